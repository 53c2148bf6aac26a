package standup

import (
	"errors"
	"time"

	"github.com/faizmokh/standup/internal/logger"
)

// DefaultCurrentTask is the placeholder written into a fresh entry's current section.
const DefaultCurrentTask = "<!-- ADD TODAY'S WORK HERE -->"

// Defaults seeds the sections of entries created by Prepare.
type Defaults struct {
	Current     []string
	Previous    []string
	Impediments []string
	Notes       []string
}

// DefaultEntryDefaults returns the stock scaffolding for new entries.
func DefaultEntryDefaults() Defaults {
	return Defaults{
		Current:     []string{DefaultCurrentTask},
		Previous:    []string{},
		Impediments: []string{"None"},
		Notes:       []string{},
	}
}

// PrepareOptions controls how Prepare builds a missing entry.
type PrepareOptions struct {
	Defaults Defaults
	// AutoFillPrevious copies the prior entry's current tasks into previous.
	AutoFillPrevious bool
	// OnlyToday restricts creation to the clock's current date.
	OnlyToday bool
	Clock     Clock
}

// Prepare returns the entry for date from file, loading the file first if
// needed. When none exists it builds one from opts, appends it to the file's
// entries and reports created=true. With OnlyToday set and date not today,
// a missing entry yields (nil, false, nil).
func Prepare(loc *Locator, file *File, date time.Time, opts PrepareOptions) (entry *Entry, created bool, err error) {
	if date.IsZero() {
		return nil, false, invalidArgument("date is required")
	}
	if !file.Loaded() {
		if _, err := file.Load(); err != nil {
			return nil, false, err
		}
	}

	if existing := file.Entries().Find(date); existing != nil {
		return existing, false, nil
	}
	if opts.OnlyToday && !SameDate(date, Today(opts.Clock)) {
		return nil, false, nil
	}

	previous, err := previousTasks(loc, file, date, opts)
	if err != nil {
		return nil, false, err
	}

	entry, err = NewEntry(date,
		cloneTasks(opts.Defaults.Current),
		previous,
		cloneTasks(opts.Defaults.Impediments),
		cloneTasks(opts.Defaults.Notes),
	)
	if err != nil {
		return nil, false, err
	}
	file.Entries().Append(entry)
	file.Entries().SortInPlace()
	return entry, true, nil
}

// previousTasks resolves the previous section for a new entry on date.
func previousTasks(loc *Locator, file *File, date time.Time, opts PrepareOptions) ([]string, error) {
	if !opts.AutoFillPrevious {
		return cloneTasks(opts.Defaults.Previous), nil
	}

	if file.New() && loc != nil {
		prev, err := loc.Existing(PreviousMonth(date))
		switch {
		case err == nil:
			entries, err := prev.Load()
			if err != nil {
				return nil, err
			}
			if last := entries.LastBefore(date); last != nil {
				logger.Debug("carrying forward from previous month", "file", prev.Name(), "date", last.Date.Format(DateLayout))
				return cloneTasks(last.Current), nil
			}
		case !errors.Is(err, ErrNotFound):
			return nil, err
		}
	}

	if last := file.Entries().LastBefore(date); last != nil {
		logger.Debug("carrying forward", "file", file.Name(), "date", last.Date.Format(DateLayout))
		return cloneTasks(last.Current), nil
	}
	return []string{}, nil
}
