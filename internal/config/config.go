// Package config resolves configuration values and file locations.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const appDirName = "fintrack"

// DataFileName is the ledger file's base name.
const DataFileName = "finance_data.json"

// DefaultDataFile is where the ledger lives unless overridden:
// $XDG_DATA_HOME/fintrack/finance_data.json.
func DefaultDataFile() string {
	return filepath.Join(xdg.DataHome, appDirName, DataFileName)
}

// DefaultConfigDir is where the config file is searched for:
// $XDG_CONFIG_HOME/fintrack.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// DefaultLogFile is where TUI runs write their logs, keeping the terminal
// clean: $XDG_STATE_HOME/fintrack/fintrack.log.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, appDirName, "fintrack.log")
}

// DataFilePath resolves the ledger path: an explicit flag or config value
// wins (with ~ and $VAR expanded), otherwise the XDG default applies.
func DataFilePath(configured string) string {
	if configured != "" {
		return ExpandPath(configured)
	}
	return DefaultDataFile()
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}
