package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable prompt configuration, loaded from
// ~/.selekt/config.yaml. Every field has a default so the file is
// entirely optional.
type Settings struct {
	// Separator joins multi-select values on the commit line.
	Separator string `yaml:"separator"`

	// MaxResults caps search result lists. 0 means unlimited.
	MaxResults int `yaml:"max_results"`

	// MinQuery is the shortest search query that triggers a fetch.
	MinQuery int `yaml:"min_query"`

	// NoColor disables ANSI styling. The NO_COLOR environment variable
	// takes precedence over this setting.
	NoColor bool `yaml:"no_color"`

	Glyphs Glyphs `yaml:"glyphs"`
}

// Glyphs overrides the markers drawn by the prompts. Empty fields keep
// the built-in glyph.
type Glyphs struct {
	Pointer   string `yaml:"pointer"`
	Checked   string `yaml:"checked"`
	Unchecked string `yaml:"unchecked"`
	Checkmark string `yaml:"checkmark"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Separator: ", ",
	}
}

// Path returns the config file location (~/.selekt/config.yaml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".selekt", "config.yaml"), nil
}

// Load reads the config file. A missing file yields the defaults; a
// malformed one is an error rather than a silent fallback.
func Load() (Settings, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes settings from YAML, filling unset fields with defaults.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("invalid config: %w", err)
	}
	if s.Separator == "" {
		s.Separator = ", "
	}
	return s, nil
}
