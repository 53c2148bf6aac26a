package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/logger"
	"github.com/faizmokh/standup/internal/standup"
)

// entryFlags are the root command's per-run overrides. Each applies only when
// set on the command line; otherwise the preference file decides.
type entryFlags struct {
	current     []string
	previous    []string
	impediments []string
	notes       []string
	order       []string
	editor      string
	write       bool
	autoFill    bool
	edit        bool
	print       bool
	json        bool
}

func (f *entryFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringSliceVar(&f.current, "current", nil, "Tasks for the current section of a new entry")
	fl.StringSliceVar(&f.previous, "previous", nil, "Tasks for the previous section of a new entry")
	fl.StringSliceVar(&f.impediments, "impediments", nil, "Tasks for the impediments section of a new entry")
	fl.StringSliceVar(&f.notes, "notes", nil, "Tasks for the notes section of a new entry")
	fl.StringSliceVar(&f.order, "sub-header-order", nil, "Section order, e.g. previous,current,impediments,notes")
	fl.StringVarP(&f.editor, "editor", "E", "", "Editor command (default: $VISUAL, $EDITOR, vim)")
	fl.BoolVarP(&f.write, "write", "w", true, "Write the month file")
	fl.BoolVarP(&f.autoFill, "auto-fill-previous", "a", true, "Copy the last entry's current tasks into previous")
	fl.BoolVarP(&f.edit, "edit", "e", true, "Open the month file in the editor")
	fl.BoolVarP(&f.print, "print", "p", false, "Print the entry instead of editing")
	fl.BoolVar(&f.json, "json", false, "Print as JSON (with --print)")
}

func (s *session) runStandup(cmd *cobra.Command, f *entryFlags) error {
	cfg := s.cfg
	flags := cmd.Flags()

	defaults := cfg.Defaults()
	if flags.Changed("current") {
		defaults.Current = f.current
	}
	if flags.Changed("previous") {
		defaults.Previous = f.previous
	}
	if flags.Changed("impediments") {
		defaults.Impediments = f.impediments
	}
	if flags.Changed("notes") {
		defaults.Notes = f.notes
	}
	if flags.Changed("sub-header-order") {
		if err := s.format.SetSubHeaderOrder(f.order); err != nil {
			return fmt.Errorf("--sub-header-order: %w", err)
		}
	}

	editor := cfg.CLI.ResolveEditor()
	if flags.Changed("editor") {
		editor = f.editor
	}
	write := override(flags.Changed("write"), f.write, cfg.CLI.Write)
	autoFill := override(flags.Changed("auto-fill-previous"), f.autoFill, cfg.CLI.AutoFillPrevious)
	edit := override(flags.Changed("edit"), f.edit, cfg.CLI.Edit)
	printing := override(flags.Changed("print"), f.print, cfg.CLI.Print) || f.json

	loc := s.locator(cfg.File.Create)
	file, err := loc.FindByDate(s.date)
	if err != nil {
		return err
	}
	logger.Debug("resolved month file", "path", file.Name(), "new", file.New())

	entry, created, err := standup.Prepare(loc, file, s.date, standup.PrepareOptions{
		Defaults:         defaults,
		AutoFillPrevious: autoFill,
		OnlyToday:        printing,
		Clock:            s.opts.Clock,
	})
	if err != nil {
		return err
	}

	if created && write {
		if err := file.Write(standup.WriteOptions{}); err != nil {
			return err
		}
		logger.Info("wrote entry", "date", s.date.Format(standup.DateLayout), "path", file.Name())
	}

	switch {
	case printing:
		return s.printEntry(cmd, entry, s.date, f.json)
	case edit:
		return s.opts.Editor(s.ctx, editor, file.Name())
	}
	return nil
}

func (s *session) printEntry(cmd *cobra.Command, entry *standup.Entry, date time.Time, asJSON bool) error {
	if entry == nil {
		printMissingEntry(cmd, date)
		return nil
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), entry)
	}
	return s.printEntries(cmd.OutOrStdout(), standup.NewEntryList(entry))
}

func override(changed, flag, preference bool) bool {
	if changed {
		return flag
	}
	return preference
}
