package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 2, cfg.Formatting.Indent)
	assert.False(t, cfg.Formatting.EscapeStrings)
	assert.True(t, cfg.Formatting.TrailingNewline)
	assert.Equal(t, "", cfg.Naming.KeyCase)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
formatting:
  indent: 4
  escape_strings: true
  trailing_newline: false
naming:
  key_case: snake
`

	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Formatting.Indent)
	assert.True(t, cfg.Formatting.EscapeStrings)
	assert.False(t, cfg.Formatting.TrailingNewline)
	assert.Equal(t, "snake", cfg.Naming.KeyCase)
}

func TestConfig_LoadPartialYAMLKeepsDefaults(t *testing.T) {
	yamlContent := `
naming:
  key_case: camel
`

	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Formatting.Indent)
	assert.True(t, cfg.Formatting.TrailingNewline)
	assert.Equal(t, "camel", cfg.Naming.KeyCase)
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("formatting: [not a map"), 0644))

	_, err := LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"indent too small", func(c *Config) { c.Formatting.Indent = 0 }, true},
		{"indent too large", func(c *Config) { c.Formatting.Indent = 9 }, true},
		{"valid key case", func(c *Config) { c.Naming.KeyCase = "pascal" }, false},
		{"invalid key case", func(c *Config) { c.Naming.KeyCase = "sHoUtY" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
