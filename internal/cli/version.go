package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print build information.",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "standup %s\n", version.Info())
		},
	}
}
