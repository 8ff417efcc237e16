package testsupport

import (
	"path/filepath"
	"testing"

	"movielib/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// The catalog lives at <base>/movies.txt, colour and screen clearing are off,
// and logging is quiet. Options are applied last.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Library.Path = filepath.Join(base, "movies.txt")
	cfgVal.Library.LockTimeoutSeconds = 1
	cfgVal.Logging.Level = "error"
	cfgVal.Display.Color = config.ColorNever
	cfgVal.Display.ClearScreen = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBackup enables the pre-save backup copy.
func WithBackup() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Library.Backup = true
	}
}

// WithLogFile sends log output to a file under the temp directory.
func WithLogFile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, name)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Library.Path)
}

// WithLogLevel overrides the quiet default log level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}
