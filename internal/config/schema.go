package config

// Config is the full set of standup preferences. The YAML layout groups keys
// by the part of the program they affect.
type Config struct {
	File  FileConfig  `yaml:"file" mapstructure:"file"`
	Entry EntryConfig `yaml:"entry" mapstructure:"entry"`
	CLI   CLIConfig   `yaml:"cli" mapstructure:"cli"`
}

// FileConfig describes how month files are named, located and laid out.
type FileConfig struct {
	HeaderDepth       int      `yaml:"header_depth" mapstructure:"header_depth"`
	SubHeaderDepth    int      `yaml:"sub_header_depth" mapstructure:"sub_header_depth"`
	CurrentHeader     string   `yaml:"current_header" mapstructure:"current_header"`
	PreviousHeader    string   `yaml:"previous_header" mapstructure:"previous_header"`
	ImpedimentsHeader string   `yaml:"impediments_header" mapstructure:"impediments_header"`
	NotesHeader       string   `yaml:"notes_header" mapstructure:"notes_header"`
	SubHeaderOrder    []string `yaml:"sub_header_order" mapstructure:"sub_header_order"`
	BulletCharacter   string   `yaml:"bullet_character" mapstructure:"bullet_character"`
	HeaderDateFormat  string   `yaml:"header_date_format" mapstructure:"header_date_format"`
	NameFormat        string   `yaml:"name_format" mapstructure:"name_format"`

	// Directory holds the month files. Empty means $STANDUP_HOME or
	// ~/.cache/standup_md.
	Directory string `yaml:"directory" mapstructure:"directory"`
	Create    bool   `yaml:"create" mapstructure:"create"`
}

// EntryConfig seeds the sections of newly created entries.
type EntryConfig struct {
	Current     []string `yaml:"current" mapstructure:"current"`
	Previous    []string `yaml:"previous" mapstructure:"previous"`
	Impediments []string `yaml:"impediments" mapstructure:"impediments"`
	Notes       []string `yaml:"notes" mapstructure:"notes"`
}

// CLIConfig holds the command line behavior defaults.
type CLIConfig struct {
	// Editor overrides $VISUAL and $EDITOR.
	Editor           string `yaml:"editor" mapstructure:"editor"`
	Verbose          bool   `yaml:"verbose" mapstructure:"verbose"`
	Edit             bool   `yaml:"edit" mapstructure:"edit"`
	Write            bool   `yaml:"write" mapstructure:"write"`
	Print            bool   `yaml:"print" mapstructure:"print"`
	AutoFillPrevious bool   `yaml:"auto_fill_previous" mapstructure:"auto_fill_previous"`
}
