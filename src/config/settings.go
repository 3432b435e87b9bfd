package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Settings struct {
	Server   ServerConfig   `toml:"server"`
	OpenAI   OpenAIConfig   `toml:"openai"`
	Personas PersonasConfig `toml:"personas"`
}

type ServerConfig struct {
	Listen string `toml:"listen"`
}

type OpenAIConfig struct {
	APIKey           string  `toml:"api_key"`
	BaseURL          string  `toml:"base_url"`
	Model            string  `toml:"model"`
	Temperature      float64 `toml:"temperature"`
	MaxTokens        int     `toml:"max_tokens"`
	TopP             float64 `toml:"top_p"`
	FrequencyPenalty float64 `toml:"frequency_penalty"`
	PresencePenalty  float64 `toml:"presence_penalty"`
	TimeoutSeconds   int     `toml:"timeout_seconds"`
}

type PersonasConfig struct {
	Dir string `toml:"dir"`
}

// Timeout returns the request timeout for chat-completion calls
func (c OpenAIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func LoadSettings() (*Settings, error) {
	settings := &Settings{
		Server: ServerConfig{
			Listen: "127.0.0.1:8750",
		},
		OpenAI: OpenAIConfig{
			BaseURL:          "https://api.openai.com/v1",
			Model:            "gpt-4o",
			Temperature:      0.8,
			MaxTokens:        300,
			TopP:             0.95,
			FrequencyPenalty: 0.2,
			PresencePenalty:  0.4,
			TimeoutSeconds:   120,
		},
		Personas: PersonasConfig{
			Dir: GetPersonasDir(),
		},
	}

	configPath := filepath.Join(GetConfigDir(), "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, err
	}

	return settings, nil
}
