// Package config loads optional YAML defaults for the CLI's ambient
// behavior: diagnostic log level, history directory, and whether to
// pause for a keypress after printing the grid. Command-line flags
// always take precedence over anything read here.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every value a file may supply defaults for.
type Config struct {
	LogLevel    string `yaml:"logLevel"`
	HistoryDir  string `yaml:"historyDir"`
	PauseOnExit bool   `yaml:"pauseOnExit"`
}

// Default returns the all-defaults configuration used when no file is
// present at the resolved path (or the path is empty).
func Default() Config {
	return Config{LogLevel: "info"}
}

// DefaultPath returns "~/.pentomino.yaml", or "" if the home directory
// cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pentomino.yaml")
}

// Load reads the YAML file at path and overlays it onto Default(). A
// missing file is not an error: it is treated as an all-defaults
// configuration. An empty path is also treated as "no file".
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
