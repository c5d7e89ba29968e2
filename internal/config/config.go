// Package config resolves simpletodo settings.
//
// Values are layered in priority order:
//  1. Defaults
//  2. Config file ($SIMPLETODO_CONFIG, else $XDG_CONFIG_HOME/simpletodo/config.toml,
//     else ~/.config/simpletodo/config.toml)
//  3. Environment variables
//  4. CLI flags (applied by the cli package)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/simpletodo/internal/render"
)

const (
	DefaultListName = ".todo_list"
	DefaultEditor   = "vi"
	DefaultTheme    = "classic"
	DefaultLogLevel = "warn"

	configDirName  = "simpletodo"
	configFileName = "config.toml"
)

// Config is everything the entry point needs before the core runs.
type Config struct {
	TodoList      string        `toml:"todo_list"`
	Editor        string        `toml:"editor"`
	Theme         string        `toml:"theme"`
	IndentSpaces  int           `toml:"indent_spaces"`
	NoDescription bool          `toml:"no_description"`
	NoSection     bool          `toml:"no_section"`
	NoColor       bool          `toml:"no_color"`
	ForceColor    bool          `toml:"force_color"`
	Colors        render.Colors `toml:"colors"`
	LogLevel      string        `toml:"log_level"`

	// File is the config file that was read, or "" when none was found.
	File string `toml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TodoList: defaultListPath(),
		Editor:   DefaultEditor,
		Theme:    DefaultTheme,
		Colors:   render.DefaultColors(),
		LogLevel: DefaultLogLevel,
	}
}

// Load applies defaults, the config file and the environment. An explicit
// path must exist; the discovered default path may be missing.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = FilePath()
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		} else {
			cfg.File = path
		}
	}

	loadFromEnv(cfg)

	cfg.TodoList = ExpandPath(cfg.TodoList)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FilePath returns the config file location to try when none is given.
func FilePath() string {
	if v := strings.TrimSpace(os.Getenv("SIMPLETODO_CONFIG")); v != "" {
		return ExpandPath(v)
	}
	if v := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); v != "" {
		return filepath.Join(v, configDirName, configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", configDirName, configFileName)
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("SIMPLETODO_LIST"); v != "" {
		cfg.TodoList = v
	}
	if v := strings.TrimSpace(os.Getenv("VISUAL")); v != "" {
		cfg.Editor = v
	} else if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		cfg.Editor = v
	}
	if v := os.Getenv("SIMPLETODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("SIMPLETODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	if v := os.Getenv("CLICOLOR_FORCE"); v != "" && v != "0" {
		cfg.ForceColor = true
	}
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	if c.IndentSpaces < 0 {
		return fmt.Errorf("indent_spaces must be >= 0, got %d", c.IndentSpaces)
	}
	if strings.TrimSpace(c.TodoList) == "" {
		return fmt.Errorf("todo_list is empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		if expanded == "~" {
			return home
		}
		return filepath.Join(home, expanded[2:])
	}
	return expanded
}

func defaultListPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultListName
	}
	return filepath.Join(home, DefaultListName)
}
