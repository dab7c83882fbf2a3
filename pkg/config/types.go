package config

// Config is the raw, loosely typed configuration as unmarshalled from
// the config file. It is never handed to the matching or move logic
// directly: BuildRuleSet validates it and compiles the strongly typed
// rules.RuleSet the core packages consume.
type Config struct {
	Settings Settings             `koanf:"settings" toml:"settings"`
	Dirs     map[string]DirConfig `koanf:"dir" toml:"dir"`
	AutoMove AutoMoveConfig       `koanf:"automove" toml:"automove"`

	// ConfigDir is the directory the config file was loaded from.
	// Relative to-script paths resolve against it. Set by the loader,
	// never read from the file itself.
	ConfigDir string `koanf:"-" toml:"-"`
}

// Settings holds presentation-level toggles.
type Settings struct {
	Color             bool `koanf:"color" toml:"color"`
	Unicode           bool `koanf:"use-unicode" toml:"use-unicode"`
	HideOkDirectories bool `koanf:"hide-ok-directories" toml:"hide-ok-directories"`
}

// DirConfig configures compliance checking for one directory. The
// directory path is the map key in Config.Dirs.
type DirConfig struct {
	Recursive               bool          `koanf:"recursive" toml:"recursive"`
	RecursiveIgnoreChildren []RawMatcher  `koanf:"recursive-ignore-children" toml:"recursive-ignore-children"`
	AllowedDirs             *[]RawMatcher `koanf:"allowed-dirs" toml:"allowed-dirs"`
	AllowedFiles            *[]RawMatcher `koanf:"allowed-files" toml:"allowed-files"`
}

// AutoMoveConfig configures the auto-move pipeline.
type AutoMoveConfig struct {
	// ForceDryRun overrides every run to dry mode. It defaults to true
	// in freshly generated configs as a safety rail for new users and
	// can only be disabled here, not from the command line.
	ForceDryRun bool `koanf:"force-dry-run" toml:"force-dry-run"`

	// AllowOverwrite permits moves to replace existing destinations.
	AllowOverwrite bool `koanf:"allow-overwrite" toml:"allow-overwrite"`

	// ReportInfo controls the auto-move hint appended to check
	// reports: "no", "any" or "count".
	ReportInfo string `koanf:"report-info" toml:"report-info" validate:"omitempty,oneof=no any count"`

	Rules []MoveRuleConfig `koanf:"rules" toml:"rules" validate:"dive"`
}

// MoveRuleConfig is one raw auto-move rule.
type MoveRuleConfig struct {
	Name     string       `koanf:"name" toml:"name"`
	Parent   string       `koanf:"parent" toml:"parent" validate:"required"`
	To       string       `koanf:"to" toml:"to" validate:"required"`
	ToScript string       `koanf:"to-script" toml:"to-script"`
	Match    []RawMatcher `koanf:"match" toml:"match"`
}

// RawMatcher is one matching criterion as written in the config file.
// Exactly one field must be set; BuildRuleSet rejects anything else.
type RawMatcher struct {
	Name    string `koanf:"name" toml:"name"`
	Ext     string `koanf:"ext" toml:"ext"`
	Pattern string `koanf:"pattern" toml:"pattern"`
	Type    string `koanf:"type" toml:"type"`
}
