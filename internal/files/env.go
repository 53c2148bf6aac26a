package files

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".cache/standup_md"

	// HomeEnv overrides the directory standup files live in.
	HomeEnv = "STANDUP_HOME"
)

// ResolveBasePath determines where standup files are kept, defaulting to
// ~/.cache/standup_md. The location can be overridden by exporting STANDUP_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return ExpandPath(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, filepath.FromSlash(DefaultDirName)), nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}

// EditorCommand builds the command that opens path in editor. The editor
// string may carry arguments, as in "code -w".
func EditorCommand(editor, path string) *exec.Cmd {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		fields = []string{"vim"}
	}
	args := append(fields[1:], path)
	return exec.Command(fields[0], args...)
}
