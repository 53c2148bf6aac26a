package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/standup"
)

func newShowCommand(s *session) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Print the entry for today or a specific date.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := s.date
			if len(args) == 1 {
				var err error
				if date, err = resolveDate(args[0], s.opts.Clock); err != nil {
					return err
				}
			}

			file, err := s.locator(false).Existing(date)
			if errors.Is(err, standup.ErrNotFound) {
				printMissingEntry(cmd, date)
				return nil
			}
			if err != nil {
				return err
			}
			entries, err := file.Load()
			if err != nil {
				return fmt.Errorf("%s: %w", file.Name(), err)
			}
			return s.printEntry(cmd, entries.Find(date), date, jsonFlag)
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the entry as JSON")

	return cmd
}
