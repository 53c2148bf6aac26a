package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/faizmokh/standup/internal/standup"
)

const januarySecond = `# 2024-01-02
## Current
- A
## Previous
- B
## Impediments
- None
`

// harness runs the root command against a temp directory with a fixed clock
// and a recorded editor.
type harness struct {
	t      *testing.T
	dir    string
	today  time.Time
	edited []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STANDUP_CONFIG", "")
	t.Setenv("STANDUP_HOME", "")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "test-editor")
	return &harness{
		t:     t,
		dir:   filepath.Join(home, "standup"),
		today: time.Date(2024, time.January, 3, 8, 30, 0, 0, time.Local),
	}
}

func (h *harness) write(name, contents string) string {
	h.t.Helper()
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.t.Fatalf("MkdirAll: %v", err)
	}
	path := filepath.Join(h.dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		h.t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func (h *harness) read(name string) string {
	h.t.Helper()
	data, err := os.ReadFile(filepath.Join(h.dir, name))
	if err != nil {
		h.t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func (h *harness) exec(args ...string) (string, error) {
	h.t.Helper()
	cmd := NewRootCommand(context.Background(), Options{
		Clock: standup.FixedClock(h.today),
		Editor: func(ctx context.Context, editor, path string) error {
			h.edited = append(h.edited, editor+" "+path)
			return nil
		},
	})
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"-d", h.dir}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (h *harness) run(args ...string) string {
	h.t.Helper()
	out, err := h.exec(args...)
	if err != nil {
		h.t.Fatalf("Execute(%q): %v\n%s", args, err, out)
	}
	return out
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func TestStandupCreatesEntryAndOpensEditor(t *testing.T) {
	h := newHarness(t)
	path := h.write("2024_01.md", januarySecond)

	h.run()

	want := "# 2024-01-03\n## Previous\n- A\n## Current\n- " + standup.DefaultCurrentTask + "\n## Impediments\n- None\n\n" +
		"# 2024-01-02\n## Previous\n- B\n## Current\n- A\n## Impediments\n- None\n\n"
	if got := h.read("2024_01.md"); got != want {
		t.Fatalf("month file =\n%s\nwant\n%s", got, want)
	}
	if len(h.edited) != 1 || h.edited[0] != "test-editor "+path {
		t.Fatalf("editor calls = %q", h.edited)
	}

	// A second run finds the entry and leaves the file alone.
	h.run()
	if got := h.read("2024_01.md"); got != want {
		t.Fatalf("second run changed the file:\n%s", got)
	}
}

func TestStandupCarriesFromPreviousMonth(t *testing.T) {
	h := newHarness(t)
	h.today = time.Date(2024, time.February, 1, 9, 0, 0, 0, time.Local)
	h.write("2024_01.md", januarySecond)

	h.run("--edit=false")
	assertContains(t, h.read("2024_02.md"), "# 2024-02-01\n## Previous\n- A\n")
}

func TestStandupFlagOverrides(t *testing.T) {
	h := newHarness(t)
	h.write("2024_01.md", januarySecond)

	h.run("--edit=false", "--auto-fill-previous=false",
		"--current", "ship it,review",
		"--impediments", "waiting on QA",
		"--sub-header-order", "current,previous,impediments,notes")

	got := h.read("2024_01.md")
	assertContains(t, got, "# 2024-01-03\n## Current\n- ship it\n- review\n## Impediments\n- waiting on QA\n\n")
	if len(h.edited) != 0 {
		t.Fatalf("editor opened with --edit=false: %q", h.edited)
	}
}

func TestStandupWithoutWrite(t *testing.T) {
	h := newHarness(t)

	out := h.run("--write=false", "-p")
	assertContains(t, out, "# 2024-01-03\n## Current\n- "+standup.DefaultCurrentTask)
	if got := h.read("2024_01.md"); got != "" {
		t.Fatalf("month file = %q, want untouched empty file", got)
	}
}

func TestStandupPrintJSON(t *testing.T) {
	h := newHarness(t)
	h.write("2024_01.md", januarySecond)

	out := h.run("--json")
	assertContains(t, out, `"2024-01-03": {`)
	assertContains(t, out, `"previous": [`)
	assertContains(t, out, `"A"`)
	if len(h.edited) != 0 {
		t.Fatal("editor opened while printing")
	}
}

func TestStandupPrintPastDateDoesNotCreate(t *testing.T) {
	h := newHarness(t)
	h.write("2024_01.md", januarySecond)

	out := h.run("-p", "--date", "2024-01-10")
	assertContains(t, out, "No entry for 2024-01-10")
	if got := h.read("2024_01.md"); got != januarySecond {
		t.Fatalf("month file changed:\n%s", got)
	}
}

func TestStandupPreferenceFile(t *testing.T) {
	h := newHarness(t)
	cfgPath := filepath.Join(t.TempDir(), "prefs.yml")
	prefs := "file:\n  header_depth: 2\n  sub_header_depth: 3\n  bullet_character: \"*\"\n  name_format: \"standup-%Y-%m.md\"\n" +
		"entry:\n  impediments: []\ncli:\n  edit: false\n"
	if err := os.WriteFile(cfgPath, []byte(prefs), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	h.run("--config", cfgPath)
	got := h.read("standup-2024-01.md")
	if got != "## 2024-01-03\n### Current\n* "+standup.DefaultCurrentTask+"\n\n" {
		t.Fatalf("month file = %q", got)
	}
}

func TestStandupCreateDisabled(t *testing.T) {
	h := newHarness(t)
	cfgPath := filepath.Join(t.TempDir(), "prefs.yml")
	if err := os.WriteFile(cfgPath, []byte("file:\n  create: false\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := h.exec("--config", cfgPath)
	if !errors.Is(err, standup.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if _, statErr := os.Stat(h.dir); !os.IsNotExist(statErr) {
		t.Fatalf("directory created with create disabled: %v", statErr)
	}
}

func TestStandupSurfacesParseErrors(t *testing.T) {
	h := newHarness(t)
	h.write("2024_01.md", "# 2024-01-02\n## Blockers\n- A\n")

	_, err := h.exec("--edit=false")
	if !errors.Is(err, standup.ErrUnrecognizedSection) {
		t.Fatalf("error = %v, want ErrUnrecognizedSection", err)
	}
	var unrecognized *standup.UnrecognizedSectionError
	if !errors.As(err, &unrecognized) || unrecognized.Line != 2 {
		t.Fatalf("error = %#v", err)
	}
}

func TestStandupRejectsBadInput(t *testing.T) {
	h := newHarness(t)
	if _, err := h.exec("--date", "03/01/2024"); err == nil {
		t.Fatal("bad --date accepted")
	}
	if _, err := h.exec("--sub-header-order", "current,notes"); !errors.Is(err, standup.ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if _, err := h.exec("-f", "%Y/%m.md"); !errors.Is(err, standup.ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
}
