package standup

import (
	"encoding/json"
	"slices"
	"time"
)

// EntryList is an ordered collection of entries. Find, Filter, First and Last
// assume the list was sorted ascending; duplicate dates are not rejected.
type EntryList struct {
	entries []*Entry
}

// NewEntryList returns a list holding entries in the given order.
func NewEntryList(entries ...*Entry) *EntryList {
	list := &EntryList{entries: make([]*Entry, 0, len(entries))}
	for _, entry := range entries {
		list.Append(entry)
	}
	return list
}

// Append adds entry to the end of the list. Nil entries are ignored.
func (l *EntryList) Append(entry *Entry) {
	if entry == nil {
		return
	}
	l.entries = append(l.entries, entry)
}

// Len returns the number of entries.
func (l *EntryList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Empty reports whether the list holds no entries.
func (l *EntryList) Empty() bool {
	return l.Len() == 0
}

// Entries returns the entries in their stored order. The slice is a copy but
// the entries are shared.
func (l *EntryList) Entries() []*Entry {
	if l == nil {
		return nil
	}
	return slices.Clone(l.entries)
}

// Find binary-searches for the entry dated date. It returns nil when absent.
func (l *EntryList) Find(date time.Time) *Entry {
	if l.Empty() {
		return nil
	}
	idx, ok := slices.BinarySearchFunc(l.entries, date, func(e *Entry, target time.Time) int {
		return compareDates(e.Date, target)
	})
	if !ok {
		return nil
	}
	return l.entries[idx]
}

// Sort returns a copy of the list sorted ascending by date.
func (l *EntryList) Sort() *EntryList {
	sorted := &EntryList{entries: slices.Clone(l.entries)}
	return sorted.SortInPlace()
}

// SortInPlace sorts the list ascending by date and returns it.
func (l *EntryList) SortInPlace() *EntryList {
	slices.SortStableFunc(l.entries, func(a, b *Entry) int {
		return a.Compare(b)
	})
	return l
}

// SortReverse returns a copy of the list sorted descending by date.
func (l *EntryList) SortReverse() *EntryList {
	sorted := l.Sort()
	slices.Reverse(sorted.entries)
	return sorted
}

// Filter returns a new list of the entries dated between start and end,
// inclusive on both ends.
func (l *EntryList) Filter(start, end time.Time) *EntryList {
	out := &EntryList{}
	for _, entry := range l.entries {
		if compareDates(entry.Date, start) >= 0 && compareDates(entry.Date, end) <= 0 {
			out.entries = append(out.entries, entry)
		}
	}
	return out
}

// FilterInPlace keeps only the entries between start and end and returns the list.
func (l *EntryList) FilterInPlace(start, end time.Time) *EntryList {
	l.entries = l.Filter(start, end).entries
	return l
}

// First returns the first entry or nil.
func (l *EntryList) First() *Entry {
	if l.Empty() {
		return nil
	}
	return l.entries[0]
}

// Last returns the last entry or nil.
func (l *EntryList) Last() *Entry {
	if l.Empty() {
		return nil
	}
	return l.entries[len(l.entries)-1]
}

// LastBefore returns the latest entry dated strictly before date, or nil.
func (l *EntryList) LastBefore(date time.Time) *Entry {
	var found *Entry
	for _, entry := range l.entries {
		if compareDates(entry.Date, date) >= 0 {
			continue
		}
		if found == nil || entry.Compare(found) > 0 {
			found = entry
		}
	}
	return found
}

// ToMap returns every entry as date -> section -> tasks.
func (l *EntryList) ToMap() map[string]map[string][]string {
	out := make(map[string]map[string][]string, l.Len())
	for _, entry := range l.entries {
		out[entry.Date.Format(DateLayout)] = entry.Sections()
	}
	return out
}

// MarshalJSON renders the list in its map form.
func (l *EntryList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToMap())
}
