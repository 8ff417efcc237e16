package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"movielib/internal/catalog"
	"movielib/internal/catalogfile"
	"movielib/internal/config"
	"movielib/internal/logging"
)

type commandContext struct {
	configFlag *string
	fileFlag   *string
	sessionID  string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, fileFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		fileFlag:   fileFlag,
		sessionID:  uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.fileFlag != nil && strings.TrimSpace(*c.fileFlag) != "" {
			expanded, err := config.ExpandPath(strings.TrimSpace(*c.fileFlag))
			if err != nil {
				c.configErr = fmt.Errorf("resolve --file: %w", err)
				return
			}
			cfg.Library.Path = expanded
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.sessionID)
		if err != nil {
			c.loggerErr = fmt.Errorf("build logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// commandLogger returns the session logger tagged with the running command.
func (c *commandContext) commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return logging.WithContext(cmd.Context(), logger), nil
}

func (c *commandContext) openStore(cmd *cobra.Command) (*catalogfile.Store, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.commandLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	store := catalogfile.NewStore(cfg.Library.Path,
		catalogfile.WithLogger(logger),
		catalogfile.WithBackup(cfg.Library.Backup),
		catalogfile.WithLockTimeout(cfg.LockTimeout()),
	)
	return store, logger, nil
}

// loadLibrary reads the catalog for a query command. A missing catalog file
// reads as an empty library; skipped lines are reported on errOut.
func (c *commandContext) loadLibrary(cmd *cobra.Command) (*catalog.Library, error) {
	store, logger, err := c.openStore(cmd)
	if err != nil {
		return nil, err
	}
	result, err := store.Load(cmd.Context())
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("catalog file not found; using empty library", logging.String("path", store.Path()))
		return catalog.NewLibrary(), nil
	}
	if err != nil {
		return nil, err
	}
	reportSkipped(cmd.ErrOrStderr(), result.Skipped)
	return result.Library, nil
}

// updateLibrary runs fn inside a locked load-modify-save cycle.
func (c *commandContext) updateLibrary(cmd *cobra.Command, fn func(*catalog.Library) (bool, error)) error {
	store, _, err := c.openStore(cmd)
	if err != nil {
		return err
	}
	saved := false
	result, err := store.Update(cmd.Context(), func(lib *catalog.Library) (bool, error) {
		changed, fnErr := fn(lib)
		saved = changed && fnErr == nil
		return changed, fnErr
	})
	if result != nil {
		reportSkipped(cmd.ErrOrStderr(), result.Skipped)
		if saved && err == nil && len(result.Skipped) > 0 {
			reportDropped(cmd.ErrOrStderr(), store.Path(), len(result.Skipped), c.config.Library.Backup)
		}
	}
	return err
}

// reportDropped warns that a rewrite removed lines which did not parse.
func reportDropped(out io.Writer, path string, count int, backup bool) {
	message := fmt.Sprintf("%d unparsable line(s) were dropped from %s when it was saved.", count, path)
	if backup {
		message += " The previous file is in " + path + ".bak"
	} else {
		message += " Set library.backup = true to keep a copy of the previous file."
	}
	fmt.Fprintln(out, renderStatusLine(statusWarn, message, false))
}

func reportSkipped(out io.Writer, skipped []*catalogfile.ParseError) {
	for _, parseErr := range skipped {
		fmt.Fprintf(out, "Failed to parse film: %s\n", parseErr.Text)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
