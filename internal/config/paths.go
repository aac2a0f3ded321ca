package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the cukesvc home directory (default ~/.cukesvc)
const EnvHome = "CUKESVC_HOME"

// GetHome returns CUKESVC_HOME or ~/.cukesvc default
func GetHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".cukesvc"
		}
		return filepath.Join(homeDir, ".cukesvc")
	}
	return ExpandPath(home)
}

// GetDBPath returns $CUKESVC_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $CUKESVC_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// DefaultSourceRoot returns $HOME/go/src/github.com, where service checkouts live
func DefaultSourceRoot() string {
	homeDir := os.Getenv("HOME")
	if homeDir == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return filepath.Join("go", "src", "github.com")
		}
	}
	return filepath.Join(homeDir, "go", "src", "github.com")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
