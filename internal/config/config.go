// Package config holds the editor settings and loads them from TOML
// or YAML files. Settings are read once at startup; a missing config
// file is not an error and yields the defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the editor configuration.
type Config struct {
	// PageSize is how many lines Ctrl-D / Ctrl-U jump.
	PageSize int `toml:"page_size" yaml:"page_size"`

	// MessageTimeoutSec is how many seconds a status message stays
	// visible.
	MessageTimeoutSec int `toml:"message_timeout" yaml:"message_timeout"`

	// Placeholder is the glyph drawn on rows past the buffer end.
	Placeholder string `toml:"placeholder" yaml:"placeholder"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PageSize:          10,
		MessageTimeoutSec: 3,
		Placeholder:       "~",
	}
}

// MessageTimeout returns the message timeout as a duration.
func (c Config) MessageTimeout() time.Duration {
	return time.Duration(c.MessageTimeoutSec) * time.Second
}

// PlaceholderByte returns the placeholder glyph as a byte.
func (c Config) PlaceholderByte() byte {
	if c.Placeholder == "" {
		return '~'
	}
	return c.Placeholder[0]
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if c.MessageTimeoutSec < 1 {
		return fmt.Errorf("message_timeout must be at least 1, got %d", c.MessageTimeoutSec)
	}
	if len(c.Placeholder) > 1 {
		return fmt.Errorf("placeholder must be a single character, got %q", c.Placeholder)
	}
	return nil
}

// Load reads the configuration at path, layered over the defaults.
// An empty path or a missing file returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	loader, err := ForPath(path)
	if err != nil {
		return cfg, err
	}
	found, err := loader.Load(&cfg)
	if err != nil {
		return Default(), err
	}
	if !found {
		return cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
