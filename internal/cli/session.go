package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/config"
	"github.com/faizmokh/standup/internal/files"
	"github.com/faizmokh/standup/internal/logger"
	"github.com/faizmokh/standup/internal/standup"
)

// session carries the state every command resolves before it runs.
type session struct {
	ctx  context.Context
	opts Options

	configPath string
	directory  string
	nameFormat string
	verbose    bool
	dateFlag   string

	cfg     *config.Config
	format  *standup.Format
	manager *files.Manager
	date    time.Time
}

// load reads preferences, applies the global flags on top and prepares the
// file layout, directory and logger.
func (s *session) load(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("directory") {
		cfg.File.Directory = s.directory
	}
	if flags.Changed("file-name-format") {
		cfg.File.NameFormat = s.nameFormat
	}
	if flags.Changed("verbose") {
		cfg.CLI.Verbose = s.verbose
	}

	format, err := cfg.Format()
	if err != nil {
		return err
	}
	manager, err := files.NewManager(cfg.File.Directory)
	if err != nil {
		return err
	}
	date, err := resolveDate(s.dateFlag, s.opts.Clock)
	if err != nil {
		return err
	}

	logDir := manager.BasePath()
	if ok, _ := manager.DirExists(); !ok && !cfg.File.Create {
		logDir = ""
	}
	if err := logger.Init(logger.Config{Verbose: cfg.CLI.Verbose, Dir: logDir}); err != nil {
		return err
	}
	logger.Debug("loaded preferences", "directory", manager.BasePath(), "name_format", format.FileNameFormat())

	s.cfg = cfg
	s.format = format
	s.manager = manager
	s.date = date
	return nil
}

func (s *session) locator(create bool) *standup.Locator {
	return standup.NewLocator(s.manager, s.format, create)
}

func (s *session) today() time.Time {
	return standup.Today(s.opts.Clock)
}
