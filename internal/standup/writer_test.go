package standup

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestSerializerRendersSectionsInOrder(t *testing.T) {
	entry := mustEntry(t, date(2024, time.January, 2),
		[]string{"A"}, []string{"B"}, []string{"None"}, nil)

	got := string(NewSerializer(DefaultFormat()).Render(NewEntryList(entry)))
	want := strings.TrimLeft(`
# 2024-01-02
## Previous
- B
## Current
- A
## Impediments
- None

`, "\n")
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestSerializerCustomFormat(t *testing.T) {
	f := DefaultFormat()
	if err := f.SetDepths(2, 3); err != nil {
		t.Fatalf("SetDepths: %v", err)
	}
	if err := f.SetBulletCharacter("*"); err != nil {
		t.Fatalf("SetBulletCharacter: %v", err)
	}
	if err := f.SetSubHeaderOrder([]string{"notes", "current", "previous", "impediments"}); err != nil {
		t.Fatalf("SetSubHeaderOrder: %v", err)
	}
	if err := f.SetHeader(SectionNotes, "remarks"); err != nil {
		t.Fatalf("SetHeader: %v", err)
	}

	entry := mustEntry(t, date(2024, time.January, 2), []string{"A"}, nil, nil, []string{"N"})
	got := string(NewSerializer(f).Render(NewEntryList(entry)))
	want := "## 2024-01-02\n### Remarks\n* N\n### Current\n* A\n\n"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestSerializerRoundTrip(t *testing.T) {
	formats := map[string]*Format{"default": DefaultFormat()}
	custom := DefaultFormat()
	_ = custom.SetDepths(3, 6)
	_ = custom.SetBulletCharacter("*")
	_ = custom.SetHeader(SectionPrevious, "yesterday")
	_ = custom.SetHeaderDateFormat("%A %d %B %Y")
	formats["custom"] = custom

	original := NewEntryList(
		mustEntry(t, date(2024, time.January, 31), []string{"ship #42", "review - docs"}, []string{"plan"}, []string{"None"}, []string{"note with * star"}),
		mustEntry(t, date(2024, time.January, 30), []string{"plan"}, nil, []string{"waiting on API"}, nil),
		mustEntry(t, date(2024, time.January, 29), nil, nil, nil, nil),
	)

	for name, f := range formats {
		t.Run(name, func(t *testing.T) {
			rendered := NewSerializer(f).Render(original)
			parsed := parse(t, f, string(rendered))
			if parsed.Len() != original.Len() {
				t.Fatalf("round trip Len() = %d, want %d\n%s", parsed.Len(), original.Len(), rendered)
			}
			for i, want := range original.Entries() {
				got := parsed.Entries()[i]
				if !SameDate(got.Date, want.Date) {
					t.Fatalf("entry %d date = %s, want %s", i, got.Date, want.Date)
				}
				for _, section := range Sections() {
					if !slices.Equal(got.Tasks(section), want.Tasks(section)) {
						t.Fatalf("entry %d %s = %#v, want %#v", i, section, got.Tasks(section), want.Tasks(section))
					}
				}
			}
		})
	}
}
