// Package config loads jsonfmt settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonfmt
type Config struct {
	Formatting FormattingConfig `yaml:"formatting"`
	Naming     NamingConfig     `yaml:"naming"`
}

// FormattingConfig controls the rendered output
type FormattingConfig struct {
	// Indent is the number of spaces per indent level.
	Indent int `yaml:"indent"`
	// EscapeStrings escapes quotes, backslashes and control characters in
	// output strings and keys. Off by default, matching the formatter.
	EscapeStrings bool `yaml:"escape_strings"`
	// TrailingNewline ends CLI output with a newline.
	TrailingNewline bool `yaml:"trailing_newline"`
}

// NamingConfig controls object key rewriting
type NamingConfig struct {
	// KeyCase is one of "", "snake", "camel", "pascal", "kebab", "screaming".
	KeyCase string `yaml:"key_case"`
}

// NewConfig returns a Config with default values
func NewConfig() *Config {
	return &Config{
		Formatting: FormattingConfig{
			Indent:          2,
			EscapeStrings:   false,
			TrailingNewline: true,
		},
	}
}

// LoadConfig loads configuration from the given path, applying defaults
// for any field the file omits.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile looks for a config file in the current directory and the
// user config directory. Returns an empty string if none exists.
func FindConfigFile() string {
	candidates := []string{".jsonfmt.yml", ".jsonfmt.yaml"}

	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		for _, name := range []string{"config.yml", "config.yaml"} {
			path := filepath.Join(configDir, "jsonfmt", name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// Validate checks configuration values
func (c *Config) Validate() error {
	if c.Formatting.Indent < 1 || c.Formatting.Indent > 8 {
		return fmt.Errorf("formatting.indent must be between 1 and 8, got %d", c.Formatting.Indent)
	}

	switch c.Naming.KeyCase {
	case "", "snake", "camel", "pascal", "kebab", "screaming":
	default:
		return fmt.Errorf("naming.key_case must be one of snake, camel, pascal, kebab, screaming; got %q", c.Naming.KeyCase)
	}

	return nil
}
