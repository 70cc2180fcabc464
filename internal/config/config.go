// Package config loads launchkit's TOML configuration. Missing files fall
// back to defaults so a fresh checkout works without any setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/andydunkin/launchkit-frontend/internal/message"
)

// Config represents the main configuration
type Config struct {
	Parsing ParsingConfig `toml:"parsing"`
	History HistoryConfig `toml:"history"`
	UI      UIConfig      `toml:"ui"`
}

// ParsingConfig holds the default pipeline options applied when a command
// does not override them with flags.
type ParsingConfig struct {
	HideCodeBlocks       bool   `toml:"hide_code_blocks"`
	HideFileMarkers      bool   `toml:"hide_file_markers"`
	ShowTechnicalDetails bool   `toml:"show_technical_details"`
	UserType             string `toml:"user_type"` // beginner, developer, admin
}

// HistoryConfig holds message-history persistence settings.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	DBPath  string `toml:"db_path"`
}

// UIConfig holds terminal rendering settings.
type UIConfig struct {
	GlamourStyle string `toml:"glamour_style"` // auto, dark, light, notty
}

// DefaultPath returns the default config file path
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "launchkit", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "launchkit", "config.toml")
}

// DefaultDBPath returns the default history database path
func DefaultDBPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "launchkit", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "launchkit", "history.db")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Parsing: ParsingConfig{
			HideCodeBlocks:  true,
			HideFileMarkers: true,
			UserType:        string(message.UserBeginner),
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  DefaultDBPath(),
		},
		UI: UIConfig{
			GlamourStyle: "auto",
		},
	}
}

// Load reads configuration from the given path, or the default path when
// path is empty. A missing file returns defaults; a malformed file is an
// error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Parsing.UserType == "" {
		cfg.Parsing.UserType = string(message.UserBeginner)
	}
	if cfg.History.DBPath == "" {
		cfg.History.DBPath = DefaultDBPath()
	}
	if cfg.UI.GlamourStyle == "" {
		cfg.UI.GlamourStyle = "auto"
	}

	return cfg, nil
}

// Options converts the parsing section into pipeline options.
func (c *Config) Options() message.Options {
	return message.Options{
		HideCodeBlocks:       c.Parsing.HideCodeBlocks,
		HideFileMarkers:      c.Parsing.HideFileMarkers,
		ShowTechnicalDetails: c.Parsing.ShowTechnicalDetails,
		UserType:             message.UserType(c.Parsing.UserType),
	}
}
