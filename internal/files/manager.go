package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager centralizes where standup files live on disk and how they are read
// and replaced.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.cache/standup_md (or another location
// determined by ResolveBasePath). The directory is created lazily.
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	basePath, err = ExpandPath(basePath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all standup files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// Path resolves name inside the base directory.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.basePath, name)
}

// DirExists reports whether the base directory is present.
func (m *Manager) DirExists() (bool, error) {
	info, err := os.Stat(m.basePath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// EnsureDir creates the base directory if it is missing.
func (m *Manager) EnsureDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}

// Exists reports whether path is a regular file.
func (m *Manager) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// IsEmpty reports whether the file at path has zero length.
func (m *Manager) IsEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Size() == 0, nil
}

// Touch creates an empty file at path unless one already exists.
func (m *Manager) Touch(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return err
	}
	return file.Close()
}

// List returns the names of the regular files in the base directory, sorted.
// A missing directory yields no names.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.basePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Open opens path for reading.
func (m *Manager) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// WriteFile replaces the contents of path with r in one atomic rename.
func (m *Manager) WriteFile(path string, r io.Reader) error {
	info, statErr := os.Stat(path)
	if err := atomic.WriteFile(path, r); err != nil {
		return err
	}
	mode := os.FileMode(filePermissions)
	if statErr == nil {
		mode = info.Mode().Perm()
	}
	return os.Chmod(path, mode)
}
