package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "", "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Catalog file: "+env.catalogPath)
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, nil, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, nil, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, nil, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, &cliTestEnv{configPath: target}, "", "config", "validate")
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Catalog file: "+filepath.Join(env.baseDir, "movies.txt"))
}

func TestConfigInitDefaultPath(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, "", "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	expected := filepath.Join(env.baseDir, "home", ".config", "movielib", "config.toml")
	requireContains(t, out, expected)
	if _, err := os.Stat(expected); err != nil {
		t.Fatalf("expected default config: %v", err)
	}
}

func TestConfigValidateRejectsBadConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := runCLI(t, env, "", "config", "validate"); err == nil {
		t.Fatal("expected validation error")
	}
	if _, _, err := runCLI(t, env, "", "list"); err == nil {
		t.Fatal("expected list to fail on invalid config")
	}
}

func TestFileFlagOverridesConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	other := filepath.Join(env.baseDir, "other.txt")
	if err := os.WriteFile(other, []byte("Heat;1995;Michael Mann;Al Pacino;8.3\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	out, _, err := runCLI(t, env, "", "--file", other, "list", "--titles")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "Heat\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEnvOverridesCatalogPath(t *testing.T) {
	env := setupCLITestEnv(t)
	other := filepath.Join(env.baseDir, "env.txt")
	if err := os.WriteFile(other, []byte("Ronin;1998;John Frankenheimer;Jean Reno;7.2\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	t.Setenv("MOVIELIB_FILE", other)

	out, _, err := runCLI(t, env, "", "list", "--titles")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "Ronin\n" {
		t.Fatalf("unexpected output %q", out)
	}
}
