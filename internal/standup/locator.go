package standup

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/faizmokh/standup/internal/files"
)

// Locator maps dates to month files inside a managed directory.
type Locator struct {
	manager *files.Manager
	format  *Format
	create  bool
}

// NewLocator returns a locator for manager's directory. When create is true,
// missing files and directories are created on lookup.
func NewLocator(manager *files.Manager, format *Format, create bool) *Locator {
	return &Locator{manager: manager, format: format, create: create}
}

// Format returns the layout files are read and written with.
func (l *Locator) Format() *Format { return l.format }

// Manager returns the filesystem manager backing the locator.
func (l *Locator) Manager() *files.Manager { return l.manager }

// FileName returns the name of the month file that holds date.
func (l *Locator) FileName(date time.Time) string {
	return l.format.FileName(date)
}

// FindByDate returns the month file for date, creating it when allowed.
func (l *Locator) FindByDate(date time.Time) (*File, error) {
	if date.IsZero() {
		return nil, invalidArgument("date is required")
	}
	return l.Find(l.FileName(date))
}

// Find returns the file called name, creating it when allowed.
func (l *Locator) Find(name string) (*File, error) {
	return l.open(name, l.create)
}

// Existing returns the month file for date only if it is already on disk,
// regardless of the creation policy.
func (l *Locator) Existing(date time.Time) (*File, error) {
	if date.IsZero() {
		return nil, invalidArgument("date is required")
	}
	return l.open(l.FileName(date), false)
}

// Months returns the months that have a file in the directory, ascending.
// Names that do not match the file name format are skipped.
func (l *Locator) Months() ([]time.Time, error) {
	if l.format.fileNameLayout == "" {
		return nil, invalidArgument("file name format %q cannot be parsed", l.format.fileNameFormat)
	}
	names, err := l.manager.List()
	if err != nil {
		return nil, err
	}
	var months []time.Time
	for _, name := range names {
		month, err := l.format.ParseFileName(name)
		if err != nil {
			continue
		}
		if l.format.FileName(month) != name {
			continue
		}
		months = append(months, month)
	}
	slices.SortFunc(months, compareDates)
	return slices.CompactFunc(months, func(a, b time.Time) bool { return compareDates(a, b) == 0 }), nil
}

func (l *Locator) open(name string, create bool) (*File, error) {
	if name == "" || strings.ContainsAny(name, `/`+string(filepath.Separator)) {
		return nil, invalidArgument("file name %q must not contain a directory", name)
	}

	dirOK, err := l.manager.DirExists()
	if err != nil {
		return nil, err
	}
	if !dirOK {
		if !create {
			return nil, fmt.Errorf("%w: directory %s", ErrNotFound, l.manager.BasePath())
		}
		if err := l.manager.EnsureDir(); err != nil {
			return nil, err
		}
	}

	path := l.manager.Path(name)
	exists, err := l.manager.Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		if !create {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if err := l.manager.Touch(path); err != nil {
			return nil, err
		}
	}

	empty, err := l.manager.IsEmpty(path)
	if err != nil {
		return nil, err
	}
	return &File{
		name:    path,
		isNew:   empty,
		entries: NewEntryList(),
		format:  l.format,
		manager: l.manager,
	}, nil
}
