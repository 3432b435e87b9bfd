package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointConfigAt(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
}

func TestLoadSettingsDefaults(t *testing.T) {
	pointConfigAt(t, t.TempDir())

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8750", s.Server.Listen)
	assert.Equal(t, "gpt-4o", s.OpenAI.Model)
	assert.Equal(t, 0.8, s.OpenAI.Temperature)
	assert.Equal(t, 300, s.OpenAI.MaxTokens)
	assert.Equal(t, 0.95, s.OpenAI.TopP)
	assert.Equal(t, 0.2, s.OpenAI.FrequencyPenalty)
	assert.Equal(t, 0.4, s.OpenAI.PresencePenalty)
	assert.Empty(t, s.OpenAI.APIKey)
	assert.Equal(t, GetPersonasDir(), s.Personas.Dir)
}

func TestLoadSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	pointConfigAt(t, dir)

	configDir := filepath.Join(dir, "shaimind")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[server]
listen = "0.0.0.0:9000"

[openai]
model = "gpt-4o-mini"
api_key = "sk-test"
`), 0644))

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", s.Server.Listen)
	assert.Equal(t, "gpt-4o-mini", s.OpenAI.Model)
	assert.Equal(t, "sk-test", s.OpenAI.APIKey)
	// Unspecified keys keep their defaults
	assert.Equal(t, 0.8, s.OpenAI.Temperature)
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	pointConfigAt(t, dir)

	configDir := filepath.Join(dir, "shaimind")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[server\n"), 0644))

	_, err := LoadSettings()
	assert.Error(t, err)
}
