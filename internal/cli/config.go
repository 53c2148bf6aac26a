package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/config"
)

func newConfigCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the preference file.",
		// path and init must work even when the preference file is broken.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective preferences as YAML.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := s.load(cmd); err != nil {
					return err
				}
				data, err := s.cfg.YAML()
				if err != nil {
					return fmt.Errorf("marshal preferences: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show the preference file path.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := s.preferencePath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a preference file with the defaults.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := s.preferencePath()
				if err != nil {
					return err
				}
				if err := config.WriteDefault(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			},
		},
	)

	return cmd
}

func (s *session) preferencePath() (string, error) {
	if s.configPath != "" {
		return s.configPath, nil
	}
	return config.DefaultPath()
}
