package config

const (
	defaultConfigPath         = "~/.config/movielib/config.toml"
	projectConfigFile         = "movielib.toml"
	dotEnvFile                = ".env"
	defaultLibraryPath        = "movies.txt"
	defaultLockTimeoutSeconds = 5
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
	defaultColorMode          = ColorAuto

	envLibraryPath = "MOVIELIB_FILE"
	envLogLevel    = "MOVIELIB_LOG_LEVEL"
)

// Color modes accepted by display.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Library: Library{
			Path:               defaultLibraryPath,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Display: Display{
			Color:       defaultColorMode,
			ClearScreen: true,
		},
	}
}
