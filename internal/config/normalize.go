package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePosition(); err != nil {
		return err
	}
	c.normalizeDisplay()
	return c.normalizeLogging()
}

func (c *Config) normalizePosition() error {
	lat, err := coordinateFromEnv(EnvLatitude)
	if err != nil {
		return err
	}
	if lat != nil {
		c.Position.Latitude = lat
	}
	lng, err := coordinateFromEnv(EnvLongitude)
	if err != nil {
		return err
	}
	if lng != nil {
		c.Position.Longitude = lng
	}
	return nil
}

func coordinateFromEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidPosition, key, raw)
	}
	return &value, nil
}

func (c *Config) normalizeDisplay() {
	c.Display.Font = strings.TrimSpace(c.Display.Font)
	c.Display.Color = strings.TrimSpace(c.Display.Color)
	c.Display.LinkTemplate = strings.TrimSpace(c.Display.LinkTemplate)
	if strings.TrimSpace(c.Display.TimeLayout) == "" {
		c.Display.TimeLayout = defaultTimeLayout
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
