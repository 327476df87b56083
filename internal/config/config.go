// Package config provides functionality for loading shell configuration
// parameters from a config file using the Viper library. It defines
// terminal behavior, prompt appearance and search-path resolution
// settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configurable settings for the shell, including
// terminal behavior, prompt appearance and resolver settings.
type Config struct {
	Terminal Terminal `mapstructure:"terminal"` // Terminal-related settings
	Prompt   Prompt   `mapstructure:"prompt"`   // Prompt appearance settings
	Resolver Resolver `mapstructure:"resolver"` // Search-path resolution settings
}

// Terminal defines settings related to terminal behavior, such as the
// history file, history limit, interrupt and exit prompts, and the
// maximum accepted input-line length.
type Terminal struct {
	HistoryFile     string `mapstructure:"history_file"`     // Path to shell history file
	HistoryLimit    int    `mapstructure:"history_limit"`    // Maximum number of history entries
	InterruptPrompt string `mapstructure:"interrupt_prompt"` // Text shown on Ctrl-C
	EOFPrompt       string `mapstructure:"exit_message"`     // Text shown on EOF/exit
	MaxLineLength   int    `mapstructure:"max_line_length"`  // Input lines longer than this are truncated
}

// Prompt defines settings related to the shell prompt appearance:
// theme and the colour of the line counter.
type Prompt struct {
	Theme             string `mapstructure:"theme"`               // Prompt theme name
	CounterColour     string `mapstructure:"counter_colour"`      // Colour for the line counter
	CounterColourBold bool   `mapstructure:"counter_colour_bold"` // Bold style for the counter
}

// Resolver defines settings for external-command resolution.
type Resolver struct {
	PathVariable string `mapstructure:"path_variable"` // Environment variable holding the search path
}

// Load reads configuration from a file named "config" in the current
// directory using Viper, and unmarshals it into a Config instance.
// Returns a partial Config and an error if loading or unmarshaling
// fails; fields the file leaves empty fall back to usable values.
func Load() (*Config, error) {

	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("config")

	cfg := new(Config)

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to load config: %v", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	cfg.fillGaps()

	return cfg, nil
}

// Default returns a Config with sensible default settings. It is used
// as a fallback when loading a configuration file fails.
func Default() *Config {

	cfg := new(Config)

	cfg.Terminal.HistoryFile = filepath.Join(os.Getenv("HOME"), ".minsh_history")
	cfg.Terminal.HistoryLimit = 1000
	cfg.Terminal.InterruptPrompt = "^C"
	cfg.Terminal.EOFPrompt = "exit"
	cfg.Terminal.MaxLineLength = 4096

	cfg.Prompt.Theme = "default"
	cfg.Prompt.CounterColour = ""
	cfg.Prompt.CounterColourBold = false

	cfg.Resolver.PathVariable = "PATH"

	return cfg
}

// fillGaps replaces empty required fields with their defaults so a
// sparse config file still yields a working shell.
func (cfg *Config) fillGaps() {
	if cfg.Resolver.PathVariable == "" {
		cfg.Resolver.PathVariable = "PATH"
	}
	if cfg.Terminal.MaxLineLength <= 0 {
		cfg.Terminal.MaxLineLength = 4096
	}
}
