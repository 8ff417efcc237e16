package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLibrary() error {
	if c.Library.Path == "" {
		return errors.New("library.path must be set")
	}
	if c.Library.LockTimeoutSeconds <= 0 {
		return errors.New("library.lock_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("display.color must be auto, always, or never (got %q)", c.Display.Color)
	}
}
