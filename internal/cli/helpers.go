package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/standup"
)

func resolveDate(dateFlag string, clock standup.Clock) (time.Time, error) {
	if dateFlag == "" {
		return standup.Today(clock), nil
	}

	parsed, err := time.ParseInLocation(standup.DateLayout, dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

// dateRange resolves --from/--to. With neither set it covers the month of
// date; all clears both bounds.
func dateRange(fromFlag, toFlag string, all bool, date time.Time) (time.Time, time.Time, error) {
	if all {
		return time.Time{}, time.Time{}, nil
	}
	if fromFlag == "" && toFlag == "" {
		start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		return start, start.AddDate(0, 1, -1), nil
	}

	var from, to time.Time
	var err error
	if fromFlag != "" {
		if from, err = time.ParseInLocation(standup.DateLayout, fromFlag, time.Local); err != nil {
			return from, to, fmt.Errorf("parse --from: %w", err)
		}
	}
	if toFlag != "" {
		if to, err = time.ParseInLocation(standup.DateLayout, toFlag, time.Local); err != nil {
			return from, to, fmt.Errorf("parse --to: %w", err)
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("--to %s is before --from %s", toFlag, fromFlag)
	}
	return from, to, nil
}

// collectEntries loads every month file overlapping [from, to] and returns the
// entries in range, ascending. Zero bounds are open.
func (s *session) collectEntries(from, to time.Time) (*standup.EntryList, error) {
	loc := s.locator(false)
	months, err := loc.Months()
	if err != nil {
		return nil, err
	}

	all := standup.NewEntryList()
	for _, month := range months {
		if !from.IsZero() && month.AddDate(0, 1, 0).Before(from) {
			continue
		}
		if !to.IsZero() && month.After(to) {
			continue
		}
		file, err := loc.Existing(month)
		if errors.Is(err, standup.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		entries, err := file.Load()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.Name(), err)
		}
		for _, entry := range entries.Entries() {
			all.Append(entry)
		}
	}

	all.SortInPlace()
	if all.Empty() {
		return all, nil
	}
	if from.IsZero() {
		from = all.First().Date
	}
	if to.IsZero() {
		to = all.Last().Date
	}
	return all.Filter(from, to), nil
}

func printMissingEntry(cmd *cobra.Command, date time.Time) {
	fmt.Fprintf(cmd.OutOrStdout(), "No entry for %s\n", date.Format(standup.DateLayout))
}

// printEntries renders list as markdown, most recent first, the way it is
// stored on disk.
func (s *session) printEntries(w io.Writer, list *standup.EntryList) error {
	return standup.NewSerializer(s.format).Encode(w, list.SortReverse())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
