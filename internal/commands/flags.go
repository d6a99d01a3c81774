package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/dolist/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Output     string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// OutputPath returns the save destination: the --output flag when set,
// otherwise the configured output_path.
func (f *Flags) OutputPath() string {
	if f.Output != "" {
		return f.Output
	}
	if f.Config != nil {
		return f.Config.OutputPath
	}
	return config.DefaultOutputPath
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/dolist/dolist.log
// On Linux: $XDG_STATE_HOME/dolist/dolist.log (defaults to ~/.local/state/dolist/dolist.log)
func DefaultLogFile() string {
	// Check XDG_STATE_HOME first (works on both macOS and Linux)
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "dolist", "dolist.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "dolist", "dolist.log")
	}

	return filepath.Join(home, ".local", "state", "dolist", "dolist.log")
}
