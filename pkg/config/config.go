package config

import (
	"github.com/arthur-debert/textkit/pkg/errors"
)

// DefaultWidth is the layout width used when nothing else is configured.
const DefaultWidth = 60

// Config holds the rendering defaults consumed by all renderers
type Config struct {
	// Width is the default total width, in display columns, of rendered blocks
	Width int `koanf:"width" toml:"width"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{Width: DefaultWidth}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return errors.Newf(errors.ErrInvalidConfig, "width must be positive, got %d", c.Width)
	}
	return nil
}
