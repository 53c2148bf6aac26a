package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newManager(t *testing.T, dir string) *Manager {
	t.Helper()
	mgr, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func TestNewManagerDoesNotCreateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "later")
	mgr := newManager(t, dir)

	if mgr.BasePath() != dir {
		t.Fatalf("BasePath() = %q, want %q", mgr.BasePath(), dir)
	}
	ok, err := mgr.DirExists()
	if err != nil {
		t.Fatalf("DirExists: %v", err)
	}
	if ok {
		t.Fatal("NewManager created the base directory")
	}

	if err := mgr.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if ok, _ := mgr.DirExists(); !ok {
		t.Fatal("EnsureDir did not create the base directory")
	}
}

func TestNewManagerFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(HomeEnv, "")

	mgr := newManager(t, "")
	want := filepath.Join(home, ".cache", "standup_md")
	if mgr.BasePath() != want {
		t.Fatalf("BasePath() = %q, want %q", mgr.BasePath(), want)
	}
}

func TestTouchAndIsEmpty(t *testing.T) {
	mgr := newManager(t, t.TempDir())
	path := mgr.Path("2024_01.md")

	if ok, err := mgr.Exists(path); err != nil || ok {
		t.Fatalf("Exists() before Touch = %v, %v", ok, err)
	}
	if err := mgr.Touch(path); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if ok, err := mgr.Exists(path); err != nil || !ok {
		t.Fatalf("Exists() after Touch = %v, %v", ok, err)
	}
	empty, err := mgr.IsEmpty(path)
	if err != nil || !empty {
		t.Fatalf("IsEmpty() = %v, %v", empty, err)
	}

	if err := os.WriteFile(path, []byte("# 2024-01-02\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := mgr.Touch(path); err != nil {
		t.Fatalf("Touch existing: %v", err)
	}
	if empty, _ := mgr.IsEmpty(path); empty {
		t.Fatal("Touch truncated an existing file")
	}
}

func TestExistsIgnoresDirectories(t *testing.T) {
	mgr := newManager(t, t.TempDir())
	if err := os.Mkdir(mgr.Path("2024_01.md"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if ok, err := mgr.Exists(mgr.Path("2024_01.md")); err != nil || ok {
		t.Fatalf("Exists() on a directory = %v, %v", ok, err)
	}
}

func TestWriteFileReplacesAndKeepsMode(t *testing.T) {
	mgr := newManager(t, t.TempDir())
	path := mgr.Path("2024_01.md")
	if err := os.WriteFile(path, []byte("old contents that are longer"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := mgr.WriteFile(path, strings.NewReader("new")); err != nil {
		t.Fatalf("Manager.WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("contents = %q, want %q", data, "new")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}

	fresh := mgr.Path("2024_02.md")
	if err := mgr.WriteFile(fresh, strings.NewReader("")); err != nil {
		t.Fatalf("Manager.WriteFile fresh: %v", err)
	}
	if info, err := os.Stat(fresh); err != nil || info.Mode().Perm() != 0o644 {
		t.Fatalf("fresh file stat = %v, %v", info, err)
	}
}

func TestOpenReadsFile(t *testing.T) {
	mgr := newManager(t, t.TempDir())
	path := mgr.Path("notes.md")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	rc, err := mgr.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	buf := make([]byte, 5)
	if _, err := rc.Read(buf); err != nil || string(buf) != "hello" {
		t.Fatalf("Read = %q, %v", buf, err)
	}
}

func TestListReturnsRegularFiles(t *testing.T) {
	mgr := newManager(t, t.TempDir())
	for _, name := range []string{"b.md", "a.md"} {
		if err := os.WriteFile(mgr.Path(name), nil, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	if err := os.Mkdir(mgr.Path("logs"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	names, err := mgr.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "a.md" || names[1] != "b.md" {
		t.Fatalf("List() = %v", names)
	}

	missing := newManager(t, mgr.Path("nope"))
	if names, err := missing.List(); err != nil || len(names) != 0 {
		t.Fatalf("List() on missing dir = %v, %v", names, err)
	}
}
