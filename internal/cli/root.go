package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/files"
	"github.com/faizmokh/standup/internal/standup"
	"github.com/faizmokh/standup/internal/version"
)

// Options injects the collaborators commands would otherwise take from the
// environment.
type Options struct {
	Clock standup.Clock
	// Editor opens path in editor. Nil runs the editor attached to the
	// terminal.
	Editor func(ctx context.Context, editor, path string) error
}

// NewRootCommand creates the top-level command. Run bare, it finds or creates
// the entry for today, writes the month file and opens it in an editor.
func NewRootCommand(ctx context.Context, opts Options) *cobra.Command {
	if opts.Clock == nil {
		opts.Clock = standup.SystemClock{}
	}
	if opts.Editor == nil {
		opts.Editor = runEditor
	}
	s := &session{ctx: ctx, opts: opts}
	ef := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "standup",
		Short: "Keep daily standup notes in monthly markdown files.",
		Long: "standup finds or creates today's entry in the month file, carrying yesterday's\n" +
			"current tasks into previous, then opens the file in your editor.",
		Args:    cobra.NoArgs,
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runStandup(cmd, ef)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&s.configPath, "config", "", "Preference file (default: $STANDUP_CONFIG or ~/.standup_md.yml)")
	pf.StringVarP(&s.directory, "directory", "d", "", "Directory holding the month files")
	pf.StringVarP(&s.nameFormat, "file-name-format", "f", "", "strftime template for month file names")
	pf.BoolVarP(&s.verbose, "verbose", "v", false, "Log debug output to stderr")
	pf.StringVar(&s.dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	ef.register(cmd)

	cmd.AddCommand(
		newShowCommand(s),
		newListCommand(s),
		newSearchCommand(s),
		newAddCommand(s),
		newTUICommand(s),
		newExportCommand(s),
		newConfigCommand(s),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx, Options{}).ExecuteContext(ctx)
}

// Main is a helper used by cmd/standup/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runEditor(ctx context.Context, editor, path string) error {
	c := files.EditorCommand(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("run editor %q: %w", editor, err)
	}
	return nil
}
