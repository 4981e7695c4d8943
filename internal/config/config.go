package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"daylight/internal/solar"
)

//go:embed sample_config.toml
var sampleConfig string

// Position holds the observer's coordinates. Nil fields are unset and must
// be supplied by the file or the SOLAR_LATITUDE / SOLAR_LONGITUDE
// environment variables.
type Position struct {
	Latitude  *float64 `toml:"latitude"`
	Longitude *float64 `toml:"longitude"`
}

// Display contains presentation settings for the status-bar menu.
type Display struct {
	BarWidth     int    `toml:"bar_width"`
	Font         string `toml:"font"`
	FontSize     int    `toml:"font_size"`
	Color        string `toml:"color"`
	LinkTemplate string `toml:"link_template"`
	TimeLayout   string `toml:"time_layout"`
}

// Logging contains configuration for log output. Stdout carries the menu,
// so logs always go to stderr and optionally to File.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for daylight.
//
// Configuration sections:
//   - Position: observer latitude and longitude in degrees
//   - Display: bar width, fonts, colors and the details link
//   - Logging: log format, level and optional log file
type Config struct {
	Position Position `toml:"position"`
	Display  Display  `toml:"display"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned
// config has environment overrides applied and paths expanded. A missing
// file is not an error; the position may still come from the environment.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("daylight.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// SolarPosition returns the validated observer position.
func (c *Config) SolarPosition() solar.Position {
	var pos solar.Position
	if c.Position.Latitude != nil {
		pos.Latitude = *c.Position.Latitude
	}
	if c.Position.Longitude != nil {
		pos.Longitude = *c.Position.Longitude
	}
	return pos
}

// DetailsURL expands the display link template for pos.
func (c *Config) DetailsURL(pos solar.Position) string {
	tmpl := strings.TrimSpace(c.Display.LinkTemplate)
	if tmpl == "" {
		return ""
	}
	return strings.NewReplacer(
		"{lat}", formatCoordinate(pos.Latitude),
		"{lng}", formatCoordinate(pos.Longitude),
	).Replace(tmpl)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
