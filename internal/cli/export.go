package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/archive"
	"github.com/faizmokh/standup/internal/files"
	"github.com/faizmokh/standup/internal/logger"
)

func newExportCommand(s *session) *cobra.Command {
	var rf rangeFlags

	cmd := &cobra.Command{
		Use:   "export <database>",
		Short: "Copy entries into a SQLite database.",
		Long: "export upserts entries into a SQLite archive. Without --from/--to every month\n" +
			"file is exported; re-exporting a date replaces its tasks.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") && !cmd.Flags().Changed("to") {
				rf.all = true
			}
			from, to, err := rf.resolve(s.date)
			if err != nil {
				return err
			}
			list, err := s.collectEntries(from, to)
			if err != nil {
				return err
			}

			path, err := files.ExpandPath(args[0])
			if err != nil {
				return err
			}
			store, err := archive.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Export(cmd.Context(), list)
			if err != nil {
				return err
			}
			logger.Info("exported entries", "count", n, "database", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entr%s to %s\n", n, plural(n), path)
			return nil
		},
	}

	rf.register(cmd)

	return cmd
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
