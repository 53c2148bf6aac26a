package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/logger"
	"github.com/faizmokh/standup/internal/standup"
)

func newAddCommand(s *session) *cobra.Command {
	var sectionFlag string

	cmd := &cobra.Command{
		Use:   "add <task ...>",
		Short: "Append a task to an entry without opening the editor.",
		Long: "add finds or creates the entry for the target date and appends the task to one\n" +
			"of its sections. The placeholder task of a fresh entry is replaced.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.TrimSpace(strings.Join(args, " "))
			if task == "" {
				return fmt.Errorf("task is required")
			}
			section, err := standup.ParseSection(strings.ToLower(sectionFlag))
			if err != nil {
				return fmt.Errorf("--section: %w", err)
			}

			loc := s.locator(s.cfg.File.Create)
			file, err := loc.FindByDate(s.date)
			if err != nil {
				return err
			}
			entry, _, err := standup.Prepare(loc, file, s.date, standup.PrepareOptions{
				Defaults:         s.cfg.Defaults(),
				AutoFillPrevious: s.cfg.CLI.AutoFillPrevious,
				Clock:            s.opts.Clock,
			})
			if err != nil {
				return err
			}

			tasks := slices.DeleteFunc(slices.Clone(entry.Tasks(section)), func(t string) bool {
				return t == standup.DefaultCurrentTask
			})
			entry.SetTasks(section, append(tasks, task))

			if err := file.Write(standup.WriteOptions{}); err != nil {
				return err
			}
			logger.Info("added task", "date", s.date.Format(standup.DateLayout), "section", section)

			fmt.Fprintf(cmd.OutOrStdout(), "Added to %s %s: %s\n", s.date.Format(standup.DateLayout), section, task)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sectionFlag, "section", "s", "current", "Section to append to (current, previous, impediments, notes)")

	return cmd
}
