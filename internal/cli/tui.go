package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/ui"
)

func newTUICommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse entries month by month in a terminal UI.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(s.ctx, s.locator(false), ui.Options{
				Date:   s.date,
				Editor: s.cfg.CLI.ResolveEditor(),
				Clock:  s.opts.Clock,
			})
			if _, err := tea.NewProgram(m, tea.WithContext(s.ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}
}
