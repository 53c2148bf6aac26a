package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/standup/internal/standup"
)

const (
	// FileName is the preference file kept in the user's home directory.
	FileName = ".standup_md.yml"

	// PathEnv overrides the preference file location.
	PathEnv = "STANDUP_CONFIG"

	envPrefix = "STANDUP"
)

// DefaultPath returns $STANDUP_CONFIG or ~/.standup_md.yml.
func DefaultPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(PathEnv)); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}

// Load merges the preference file at path over Default. With an empty path
// the default location is used and a missing file is not an error; an
// explicit path must exist. Keys the schema does not know are rejected.
// Environment variables such as STANDUP_FILE_DIRECTORY override both.
func Load(path string) (*Config, error) {
	required := path != ""
	if !required {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	defaults, err := Default().YAML()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, fmt.Errorf("read default preferences: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read preferences %s: %w", path, err)
		}
	case errors.Is(statErr, os.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("read preferences %s: %w", path, statErr)
	}

	cfg := &Config{}
	if err := v.UnmarshalExact(cfg); err != nil {
		return nil, fmt.Errorf("decode preferences %s: %w", path, err)
	}
	if _, err := cfg.Format(); err != nil {
		return nil, fmt.Errorf("preferences %s: %w", path, err)
	}
	return cfg, nil
}

// YAML renders c the way it would appear in a preference file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Format builds the file layout through its validated setters. Errors name
// the offending key and wrap standup.ErrInvalidArgument.
func (c *Config) Format() (*standup.Format, error) {
	f := standup.DefaultFormat()
	fc := c.File

	if err := f.SetDepths(fc.HeaderDepth, fc.SubHeaderDepth); err != nil {
		return nil, fmt.Errorf("file.header_depth/sub_header_depth: %w", err)
	}
	if err := f.SetBulletCharacter(fc.BulletCharacter); err != nil {
		return nil, fmt.Errorf("file.bullet_character: %w", err)
	}
	headers := []struct {
		key     string
		section standup.Section
		label   string
	}{
		{"file.current_header", standup.SectionCurrent, fc.CurrentHeader},
		{"file.previous_header", standup.SectionPrevious, fc.PreviousHeader},
		{"file.impediments_header", standup.SectionImpediments, fc.ImpedimentsHeader},
		{"file.notes_header", standup.SectionNotes, fc.NotesHeader},
	}
	for _, h := range headers {
		if err := f.SetHeader(h.section, h.label); err != nil {
			return nil, fmt.Errorf("%s: %w", h.key, err)
		}
	}
	if err := f.SetSubHeaderOrder(fc.SubHeaderOrder); err != nil {
		return nil, fmt.Errorf("file.sub_header_order: %w", err)
	}
	if err := f.SetHeaderDateFormat(fc.HeaderDateFormat); err != nil {
		return nil, fmt.Errorf("file.header_date_format: %w", err)
	}
	if err := f.SetFileNameFormat(fc.NameFormat); err != nil {
		return nil, fmt.Errorf("file.name_format: %w", err)
	}
	return f, nil
}

// Defaults returns independent copies of the entry scaffolding.
func (c *Config) Defaults() standup.Defaults {
	return standup.Defaults{
		Current:     nonNil(c.Entry.Current),
		Previous:    nonNil(c.Entry.Previous),
		Impediments: nonNil(c.Entry.Impediments),
		Notes:       nonNil(c.Entry.Notes),
	}
}

func nonNil(tasks []string) []string {
	if tasks == nil {
		return []string{}
	}
	return slices.Clone(tasks)
}
