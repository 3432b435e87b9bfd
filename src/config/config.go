package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// GetConfigDir returns the OS-appropriate configuration directory for shaimind
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "shaimind")
}

// GetPersonasDir returns the directory where user persona definition files are stored
func GetPersonasDir() string {
	return filepath.Join(GetConfigDir(), "personas")
}

// EnsureConfigDirs creates the config and personas directories if they don't exist
func EnsureConfigDirs() error {
	if err := os.MkdirAll(GetConfigDir(), 0755); err != nil {
		return err
	}
	return os.MkdirAll(GetPersonasDir(), 0755)
}
