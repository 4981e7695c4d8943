// Package config loads, normalizes, and validates daylight configuration.
//
// It embeds the sample config, resolves the config path (explicit flag,
// ~/.config/daylight/config.toml, then ./daylight.toml), decodes TOML,
// applies the SOLAR_LATITUDE / SOLAR_LONGITUDE overrides and rejects
// missing or out-of-range coordinates before any sun computation runs.
//
// The rest of the program receives a *Config and a solar.Position derived
// from it; nothing outside this package reads the environment.
package config
