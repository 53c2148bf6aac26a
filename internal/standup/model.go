package standup

import (
	"cmp"
	"encoding/json"
	"time"
)

// DateLayout is the layout used for dates in map and JSON exports.
const DateLayout = "2006-01-02"

// Section identifies one of the four labeled subdivisions of an entry.
type Section uint8

const (
	// SectionCurrent holds the work planned for the entry's day.
	SectionCurrent Section = iota
	// SectionPrevious holds the work carried over from the prior entry.
	SectionPrevious
	// SectionImpediments lists blockers.
	SectionImpediments
	// SectionNotes collects anything else, including text before the first sub-header.
	SectionNotes

	sectionCount = 4
)

var sectionNames = [sectionCount]string{
	SectionCurrent:     "current",
	SectionPrevious:    "previous",
	SectionImpediments: "impediments",
	SectionNotes:       "notes",
}

// Sections returns every section in the default serialization order.
func Sections() []Section {
	return []Section{SectionPrevious, SectionCurrent, SectionImpediments, SectionNotes}
}

func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "unknown"
}

// ParseSection maps a lower-case section name to its Section.
func ParseSection(name string) (Section, error) {
	for i, candidate := range sectionNames {
		if candidate == name {
			return Section(i), nil
		}
	}
	return 0, invalidArgument("unknown section %q", name)
}

// Entry is one day's standup record.
type Entry struct {
	Date        time.Time
	Current     []string
	Previous    []string
	Impediments []string
	Notes       []string
}

// NewEntry builds an entry for date. The time of day is dropped and nil task
// lists are replaced by empty ones.
func NewEntry(date time.Time, current, previous, impediments, notes []string) (*Entry, error) {
	if date.IsZero() {
		return nil, invalidArgument("entry date is required")
	}
	return &Entry{
		Date:        truncateDate(date),
		Current:     nonNil(current),
		Previous:    nonNil(previous),
		Impediments: nonNil(impediments),
		Notes:       nonNil(notes),
	}, nil
}

// Tasks returns the task list stored under section.
func (e *Entry) Tasks(section Section) []string {
	switch section {
	case SectionCurrent:
		return e.Current
	case SectionPrevious:
		return e.Previous
	case SectionImpediments:
		return e.Impediments
	case SectionNotes:
		return e.Notes
	}
	return nil
}

// SetTasks replaces the task list stored under section.
func (e *Entry) SetTasks(section Section, tasks []string) {
	tasks = nonNil(tasks)
	switch section {
	case SectionCurrent:
		e.Current = tasks
	case SectionPrevious:
		e.Previous = tasks
	case SectionImpediments:
		e.Impediments = tasks
	case SectionNotes:
		e.Notes = tasks
	}
}

// Compare orders entries by date only.
func (e *Entry) Compare(other *Entry) int {
	return compareDates(e.Date, other.Date)
}

// Sections returns the entry's task lists keyed by section name.
func (e *Entry) Sections() map[string][]string {
	out := make(map[string][]string, sectionCount)
	for i := range sectionNames {
		section := Section(i)
		out[section.String()] = nonNil(e.Tasks(section))
	}
	return out
}

// ToMap returns the entry as date -> section -> tasks.
func (e *Entry) ToMap() map[string]map[string][]string {
	return map[string]map[string][]string{
		e.Date.Format(DateLayout): e.Sections(),
	}
}

// MarshalJSON renders the entry in its map form.
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToMap())
}

func nonNil(tasks []string) []string {
	if tasks == nil {
		return []string{}
	}
	return tasks
}

func cloneTasks(tasks []string) []string {
	out := make([]string, len(tasks))
	copy(out, tasks)
	return out
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// compareDates compares calendar dates, ignoring time of day and location.
func compareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return cmp.Compare(ay, by)
	case am != bm:
		return cmp.Compare(am, bm)
	default:
		return cmp.Compare(ad, bd)
	}
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return compareDates(a, b) == 0
}
