package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/faizmokh/standup/internal/standup"
)

// Default returns the stock preferences.
func Default() *Config {
	defaults := standup.DefaultEntryDefaults()
	return &Config{
		File: FileConfig{
			HeaderDepth:       1,
			SubHeaderDepth:    2,
			CurrentHeader:     "Current",
			PreviousHeader:    "Previous",
			ImpedimentsHeader: "Impediments",
			NotesHeader:       "Notes",
			SubHeaderOrder:    []string{"previous", "current", "impediments", "notes"},
			BulletCharacter:   "-",
			HeaderDateFormat:  "%Y-%m-%d",
			NameFormat:        "%Y_%m.md",
			Create:            true,
		},
		Entry: EntryConfig{
			Current:     defaults.Current,
			Previous:    defaults.Previous,
			Impediments: defaults.Impediments,
			Notes:       defaults.Notes,
		},
		CLI: CLIConfig{
			Edit:             true,
			Write:            true,
			AutoFillPrevious: true,
		},
	}
}

const defaultHeader = `# standup preferences
#
# file.directory defaults to $STANDUP_HOME or ~/.cache/standup_md when empty.
# cli.editor defaults to $VISUAL, then $EDITOR, then vim.
`

// WriteDefault writes the stock preferences to path. An existing file is
// never overwritten.
func WriteDefault(path string) error {
	data, err := Default().YAML()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create preference file: %w", err)
	}
	if _, err := f.WriteString(defaultHeader + "\n" + string(data)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ResolveEditor picks the editor command: the configured one, then $VISUAL,
// then $EDITOR, then vim.
func (c CLIConfig) ResolveEditor() string {
	for _, candidate := range []string{c.Editor, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	return "vim"
}
