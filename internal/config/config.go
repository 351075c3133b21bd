package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds user settings read from config.toml.
type Config struct {
	Log    Log    `toml:"log"`
	Editor Editor `toml:"editor"`
}

type Log struct {
	Path  string `toml:"path"`  // Empty disables logging.
	Level string `toml:"level"` // debug, info, warn or error.
}

type Editor struct {
	TabWidth int `toml:"tab_width"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Editor: Editor{TabWidth: 4},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/scribe/config.toml, falling back to
// ~/.config/scribe/config.toml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "scribe", "config.toml")
}

// Load reads the config file at path over the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Editor.TabWidth <= 0 {
		return fmt.Errorf("editor.tab_width must be positive, got %d", c.Editor.TabWidth)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts Level to a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
