package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/cadence/internal/core/config"
	"github.com/colonyops/cadence/internal/tracker"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	StoreFile  string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Tracker runs every read and write of the organiser file
	Tracker *tracker.Service
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "cadence", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/cadence/cadence.log
// On Linux: $XDG_STATE_HOME/cadence/cadence.log (defaults to ~/.local/state/cadence/cadence.log)
func DefaultLogFile() string {
	// Check XDG_STATE_HOME first (works on both macOS and Linux)
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "cadence", "cadence.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "cadence", "cadence.log")
	}

	return filepath.Join(home, ".local", "state", "cadence", "cadence.log")
}
