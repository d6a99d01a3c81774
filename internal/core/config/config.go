// Package config handles configuration loading and validation for dolist.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/dolist/internal/core/styles"
)

// DefaultOutputPath is where tasks are saved unless configured otherwise.
const DefaultOutputPath = "TODO"

// Config holds the application configuration.
type Config struct {
	OutputPath string `yaml:"output_path"`
	Theme      string `yaml:"theme"`
	Origin     Origin `yaml:"origin"`
	Keys       Keys   `yaml:"keys"`
}

// Origin is the screen position of the first drawn row.
type Origin struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Keys lists the key names bound to each action. Names follow Bubble Tea's
// key strings ("q", "enter", "tab", "ctrl+c").
type Keys struct {
	Quit        []string `yaml:"quit"`
	Save        []string `yaml:"save"`
	Up          []string `yaml:"up"`
	Down        []string `yaml:"down"`
	Transfer    []string `yaml:"transfer"`
	ToggleFocus []string `yaml:"toggle_focus"`
}

// Binding pairs an action name with its keys.
type Binding struct {
	Action string
	Keys   []string
}

// Bindings returns the key lists keyed by action name, in a stable order.
func (k Keys) Bindings() []Binding {
	return []Binding{
		{Action: "quit", Keys: k.Quit},
		{Action: "save", Keys: k.Save},
		{Action: "up", Keys: k.Up},
		{Action: "down", Keys: k.Down},
		{Action: "transfer", Keys: k.Transfer},
		{Action: "toggle_focus", Keys: k.ToggleFocus},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		Theme:      styles.DefaultTheme,
		Origin:     Origin{Row: 1, Col: 1},
		Keys: Keys{
			Quit:        []string{"q", "ctrl+c"},
			Save:        []string{"e"},
			Up:          []string{"w"},
			Down:        []string{"s"},
			Transfer:    []string{"enter"},
			ToggleFocus: []string{"tab"},
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		case os.IsNotExist(err):
			// not found is fine, using defaults
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills blank scalar values. yaml.v3 replaces slices
// wholesale, so a key list explicitly set to [] stays empty and fails
// validation.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.OutputPath == "" {
		c.OutputPath = defaults.OutputPath
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dolist", "config.yaml")
}
