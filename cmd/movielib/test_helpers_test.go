package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movielib/internal/config"
	"movielib/internal/testsupport"
)

type cliTestEnv struct {
	cfg         *config.Config
	configPath  string
	catalogPath string
	baseDir     string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("MOVIELIB_FILE", "")
	t.Setenv("MOVIELIB_LOG_LEVEL", "")
	t.Chdir(base)

	configPath := filepath.Join(base, "movielib-test.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:         cfg,
		configPath:  configPath,
		catalogPath: cfg.Library.Path,
		baseDir:     base,
	}
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if env != nil && env.configPath != "" {
		flags = append(flags, "--config", env.configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[library]\npath = %q\nbackup = %t\nlock_timeout_seconds = %d\n\n[logging]\nformat = %q\nlevel = %q\nfile = %q\n\n[display]\ncolor = %q\nclear_screen = %t\n",
		cfg.Library.Path,
		cfg.Library.Backup,
		cfg.Library.LockTimeoutSeconds,
		cfg.Logging.Format,
		cfg.Logging.Level,
		cfg.Logging.File,
		cfg.Display.Color,
		cfg.Display.ClearScreen,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}

var sampleCatalog = []string{
	"Jaws;1975;Steven Spielberg;Roy Scheider,Robert Shaw;8.0",
	"Heat;1995;Michael Mann;Al Pacino,Robert De Niro;8.3",
	"Ronin;1998;John Frankenheimer;Robert De Niro,Jean Reno;7.2",
}
