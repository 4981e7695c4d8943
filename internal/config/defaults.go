package config

const (
	defaultConfigPath   = "~/.config/daylight/config.toml"
	defaultBarWidth     = 20
	defaultFont         = "Source Code Pro"
	defaultFontSize     = 14
	defaultColor        = "black"
	defaultLinkTemplate = "https://www.timeanddate.com/sun/@{lat},{lng}"
	defaultTimeLayout   = "15:04"
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
)

// Environment variables that override the configured position.
const (
	EnvLatitude  = "SOLAR_LATITUDE"
	EnvLongitude = "SOLAR_LONGITUDE"
)

// Default returns a Config populated with repository defaults. The position
// is left unset.
func Default() Config {
	return Config{
		Display: Display{
			BarWidth:     defaultBarWidth,
			Font:         defaultFont,
			FontSize:     defaultFontSize,
			Color:        defaultColor,
			LinkTemplate: defaultLinkTemplate,
			TimeLayout:   defaultTimeLayout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
