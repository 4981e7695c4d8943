package config

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMissingPosition is returned when latitude or longitude is unset.
	ErrMissingPosition = errors.New("position not configured")
	// ErrInvalidPosition is returned for unparsable or out-of-range coordinates.
	ErrInvalidPosition = errors.New("invalid position")
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePosition(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePosition() error {
	if c.Position.Latitude == nil {
		return fmt.Errorf("%w: position.latitude is required; set it in %s or export %s", ErrMissingPosition, configHint(), EnvLatitude)
	}
	if c.Position.Longitude == nil {
		return fmt.Errorf("%w: position.longitude is required; set it in %s or export %s", ErrMissingPosition, configHint(), EnvLongitude)
	}
	if err := ensureRange("position.latitude", *c.Position.Latitude, 90); err != nil {
		return err
	}
	return ensureRange("position.longitude", *c.Position.Longitude, 180)
}

func ensureRange(key string, value, limit float64) error {
	if math.IsNaN(value) || value < -limit || value > limit {
		return fmt.Errorf("%w: %s must be between %v and %v, got %v", ErrInvalidPosition, key, -limit, limit, value)
	}
	return nil
}

func (c *Config) validateDisplay() error {
	if c.Display.BarWidth <= 0 {
		return errors.New("display.bar_width must be positive")
	}
	if c.Display.FontSize < 0 {
		return errors.New("display.font_size must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

func configHint() string {
	path, err := DefaultConfigPath()
	if err != nil {
		return defaultConfigPath
	}
	return path + " (create with 'daylight config init')"
}
