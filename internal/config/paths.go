package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".quill"

// DataDir returns the base data directory for quill.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// SettingsPath returns the path to the settings file.
func SettingsPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "settings.toml"), nil
}

// TokenPath returns the path to the session token file written by the login
// helper of the external session provider.
func TokenPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "token"), nil
}

// StatePath returns the path to the persisted UI state file.
func StatePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "state.json"), nil
}
