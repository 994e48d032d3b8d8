package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "listo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LISTO_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "" || cfg.Theme != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(home, ".local", "share", "listo") {
		t.Fatalf("default dir = %q", dir)
	}
	if cfg.PollInterval() != 500*time.Millisecond {
		t.Fatalf("default poll = %v", cfg.PollInterval())
	}
}

func TestLoadReadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LISTO_DIR", "")
	writeConfig(t, home, `
dir = "/tmp/elsewhere"
backend = "sqlite"
theme = "neon"
poll-interval-ms = 250
`)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dir != "/tmp/elsewhere" || cfg.Backend != "sqlite" || cfg.Theme != "neon" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.PollInterval() != 250*time.Millisecond {
		t.Fatalf("poll = %v", cfg.PollInterval())
	}
}

func TestEnvOverridesDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `dir = "/tmp/from-file"`)
	t.Setenv("LISTO_DIR", "/tmp/from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if dir, _ := cfg.DataDir(); dir != "/tmp/from-env" {
		t.Fatalf("dir = %q; want env override", dir)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `dir = [broken`)

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
