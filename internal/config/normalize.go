package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLibrary(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeDisplay()
	return nil
}

func (c *Config) normalizeLibrary() error {
	if value, ok := os.LookupEnv(envLibraryPath); ok && strings.TrimSpace(value) != "" {
		c.Library.Path = strings.TrimSpace(value)
	}
	c.Library.Path = strings.TrimSpace(c.Library.Path)
	if c.Library.Path == "" {
		c.Library.Path = defaultLibraryPath
	}
	var err error
	if c.Library.Path, err = expandPath(c.Library.Path); err != nil {
		return fmt.Errorf("library.path: %w", err)
	}
	if c.Library.LockTimeoutSeconds == 0 {
		c.Library.LockTimeoutSeconds = defaultLockTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeDisplay() {
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	if c.Display.Color == "" {
		c.Display.Color = defaultColorMode
	}
}
