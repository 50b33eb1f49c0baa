// Package storage provides persistent storage for game snapshots and
// renderer preferences.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessmodel"

// dbDirEnv overrides the database directory when set.
const dbDirEnv = "CHESSMODEL_DB"

// GetDataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/chessmodel/
// - Linux: ~/.local/share/chessmodel/
// - Windows: %APPDATA%/chessmodel/
func GetDataDir() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}

func dataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Check XDG_DATA_HOME first
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(baseDir, appName), nil
}

// GetDatabaseDir returns the directory for the BadgerDB database.
// CHESSMODEL_DB takes precedence over the platform data directory.
func GetDatabaseDir() (string, error) {
	dir, err := databaseDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}

func databaseDir() (string, error) {
	if dir := os.Getenv(dbDirEnv); dir != "" {
		return dir, nil
	}

	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db"), nil
}
