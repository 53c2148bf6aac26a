package standup

import (
	"bytes"
	"errors"
	"time"

	"github.com/faizmokh/standup/internal/files"
)

// File is one month's standup document.
type File struct {
	name    string
	isNew   bool
	loaded  bool
	entries *EntryList
	format  *Format
	manager *files.Manager
}

// Name returns the absolute path of the file.
func (f *File) Name() string { return f.name }

// New reports whether the file was empty when it was located.
func (f *File) New() bool { return f.isNew }

// Loaded reports whether Load has succeeded at least once.
func (f *File) Loaded() bool { return f.loaded }

// Entries returns the entries read by Load, plus any appended since.
func (f *File) Entries() *EntryList { return f.entries }

// Exists reports whether the file is still on disk.
func (f *File) Exists() bool {
	ok, err := f.manager.Exists(f.name)
	return err == nil && ok
}

// Load parses the file and replaces Entries with its contents sorted
// ascending. On error the previous entries are kept.
func (f *File) Load() (*EntryList, error) {
	if f == nil || f.manager == nil {
		return nil, errors.New("file not initialized with file manager")
	}
	rc, err := f.manager.Open(f.name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	list, err := NewParser(f.format).Parse(rc)
	if err != nil {
		return nil, err
	}
	f.entries = list.SortInPlace()
	f.loaded = true
	return f.entries, nil
}

// WriteOptions bounds the entries File.Write persists. Zero dates default to
// the first and last entry dates.
type WriteOptions struct {
	Start time.Time
	End   time.Time
}

// Write replaces the file on disk with the entries between the requested
// dates, most recent first. Anything outside the range is dropped from disk.
func (f *File) Write(opts WriteOptions) error {
	if f == nil || f.manager == nil {
		return errors.New("file not initialized with file manager")
	}
	sorted := f.entries.Sort()

	var content []byte
	if !sorted.Empty() {
		start, end := opts.Start, opts.End
		if start.IsZero() {
			start = sorted.First().Date
		}
		if end.IsZero() {
			end = sorted.Last().Date
		}
		content = NewSerializer(f.format).Render(sorted.Filter(start, end).SortReverse())
	}

	if err := f.manager.WriteFile(f.name, bytes.NewReader(content)); err != nil {
		return err
	}
	f.isNew = len(content) == 0
	return nil
}
