package standup

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/faizmokh/standup/internal/files"
)

func newLocator(t *testing.T, dir string, create bool) *Locator {
	t.Helper()
	mgr, err := files.NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return NewLocator(mgr, DefaultFormat(), create)
}

func writeMonth(t *testing.T, dir, name, contents string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func TestLocatorCreatesMissingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "standup")
	loc := newLocator(t, dir, true)

	file, err := loc.FindByDate(date(2024, time.January, 2))
	if err != nil {
		t.Fatalf("FindByDate: %v", err)
	}
	if want := filepath.Join(dir, "2024_01.md"); file.Name() != want {
		t.Fatalf("Name() = %q, want %q", file.Name(), want)
	}
	if !file.New() || !file.Exists() {
		t.Fatalf("New() = %v, Exists() = %v, want both true", file.New(), file.Exists())
	}
	if file.Loaded() || !file.Entries().Empty() {
		t.Fatal("fresh file should start unloaded and empty")
	}
}

func TestLocatorWithoutCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "standup")
	loc := newLocator(t, dir, false)

	if _, err := loc.FindByDate(date(2024, time.January, 2)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing directory error = %v, want ErrNotFound", err)
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("directory was created: %v", err)
	}

	writeMonth(t, dir, "2023_12.md", "# 2023-12-29\n## Current\n- A\n")
	if _, err := loc.FindByDate(date(2024, time.January, 2)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing file error = %v, want ErrNotFound", err)
	}

	file, err := loc.FindByDate(date(2023, time.December, 1))
	if err != nil {
		t.Fatalf("FindByDate existing: %v", err)
	}
	if file.New() {
		t.Fatal("file with content reported as new")
	}
}

func TestLocatorRejectsBadInput(t *testing.T) {
	loc := newLocator(t, t.TempDir(), true)

	if _, err := loc.FindByDate(time.Time{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero date error = %v, want ErrInvalidArgument", err)
	}
	if _, err := loc.Find("nested/2024_01.md"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nested name error = %v, want ErrInvalidArgument", err)
	}
}

func TestLocatorExistingNeverCreates(t *testing.T) {
	dir := t.TempDir()
	loc := newLocator(t, dir, true)

	if _, err := loc.Existing(date(2024, time.January, 2)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Existing() error = %v, want ErrNotFound", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "2024_01.md")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Existing() created the file: %v", err)
	}
}

func TestLocatorCustomFileNameFormat(t *testing.T) {
	dir := t.TempDir()
	loc := newLocator(t, dir, true)
	if err := loc.Format().SetFileNameFormat("standup-%Y-%m.md"); err != nil {
		t.Fatalf("SetFileNameFormat: %v", err)
	}
	file, err := loc.FindByDate(date(2024, time.March, 9))
	if err != nil {
		t.Fatalf("FindByDate: %v", err)
	}
	if filepath.Base(file.Name()) != "standup-2024-03.md" {
		t.Fatalf("Name() = %q", file.Name())
	}
}

func TestFileLoadSortsAscending(t *testing.T) {
	dir := t.TempDir()
	writeMonth(t, dir, "2024_01.md", "# 2024-01-03\n## Current\n- B\n\n# 2024-01-02\n## Current\n- A\n")
	file, err := newLocator(t, dir, false).FindByDate(date(2024, time.January, 1))
	if err != nil {
		t.Fatalf("FindByDate: %v", err)
	}

	list, err := file.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := dates(list); !slices.Equal(got, []string{"2024-01-02", "2024-01-03"}) {
		t.Fatalf("Load() dates = %v", got)
	}
	if !file.Loaded() {
		t.Fatal("Loaded() = false after Load")
	}

	again, err := file.Load()
	if err != nil || again.Len() != 2 {
		t.Fatalf("second Load() = %d entries, %v", again.Len(), err)
	}
}

func TestFileLoadFailureKeepsEntries(t *testing.T) {
	dir := t.TempDir()
	path := writeMonth(t, dir, "2024_01.md", "# 2024-01-02\n## Current\n- A\n")
	file, err := newLocator(t, dir, false).FindByDate(date(2024, time.January, 2))
	if err != nil {
		t.Fatalf("FindByDate: %v", err)
	}
	if _, err := file.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	writeMonth(t, dir, "2024_01.md", "- stray\n")
	if _, err := file.Load(); !errors.Is(err, ErrMalformedFile) {
		t.Fatalf("Load() error = %v, want ErrMalformedFile", err)
	}
	if file.Entries().Len() != 1 {
		t.Fatalf("entries after failed load = %d, want 1", file.Entries().Len())
	}
	if readFile(t, path) != "- stray\n" {
		t.Fatal("failed load modified the file")
	}
}

func TestFileWriteDescendingWithinRange(t *testing.T) {
	dir := t.TempDir()
	loc := newLocator(t, dir, true)
	file, err := loc.FindByDate(date(2024, time.January, 1))
	if err != nil {
		t.Fatalf("FindByDate: %v", err)
	}
	for _, day := range []int{3, 1, 2} {
		file.Entries().Append(mustEntry(t, date(2024, time.January, day), []string{"task"}, nil, nil, nil))
	}

	if err := file.Write(WriteOptions{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := readFile(t, file.Name())
	if strings.Index(got, "# 2024-01-03") > strings.Index(got, "# 2024-01-02") ||
		strings.Index(got, "# 2024-01-02") > strings.Index(got, "# 2024-01-01") {
		t.Fatalf("entries not written most recent first:\n%s", got)
	}
	if file.New() {
		t.Fatal("New() = true after writing entries")
	}

	if err := file.Write(WriteOptions{Start: date(2024, time.January, 2), End: date(2024, time.January, 2)}); err != nil {
		t.Fatalf("Write range: %v", err)
	}
	got = readFile(t, file.Name())
	if got != "# 2024-01-02\n## Current\n- task\n\n" {
		t.Fatalf("ranged write = %q", got)
	}
	if file.Entries().Len() != 3 {
		t.Fatal("Write should not drop entries from memory")
	}
}

func TestFileWriteEmptyList(t *testing.T) {
	dir := t.TempDir()
	path := writeMonth(t, dir, "2024_01.md", "# 2024-01-02\n## Current\n- A\n")
	file, err := newLocator(t, dir, false).FindByDate(date(2024, time.January, 2))
	if err != nil {
		t.Fatalf("FindByDate: %v", err)
	}

	if err := file.Write(WriteOptions{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := readFile(t, path); got != "" {
		t.Fatalf("contents = %q, want empty", got)
	}
	if !file.New() {
		t.Fatal("New() = false after writing nothing")
	}
}

func TestLocatorMonths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2024_02.md", "2023_12.md", "notes.txt", "2024_1.md", "2024_01.md"} {
		writeMonth(t, dir, name, "")
	}
	if err := os.Mkdir(filepath.Join(dir, "logs"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	months, err := newLocator(t, dir, false).Months()
	if err != nil {
		t.Fatalf("Months: %v", err)
	}
	var got []string
	for _, m := range months {
		got = append(got, m.Format("2006-01"))
	}
	if want := []string{"2023-12", "2024-01", "2024-02"}; !slices.Equal(got, want) {
		t.Fatalf("Months() = %v, want %v", got, want)
	}

	empty, err := newLocator(t, filepath.Join(dir, "missing"), false).Months()
	if err != nil || len(empty) != 0 {
		t.Fatalf("Months() on missing dir = %v, %v", empty, err)
	}
}
