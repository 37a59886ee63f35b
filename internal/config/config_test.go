package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("Load: got error %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_Full(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
verbose: true
on_conflict: skip
server:
  addr: "0.0.0.0:9000"
  read_timeout: 10s
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.OnConflict != "skip" {
		t.Errorf("OnConflict = %q, want %q", cfg.OnConflict, "skip")
	}
	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, "0.0.0.0:9000")
	}
	if cfg.Server.ReadTimeout != "10s" {
		t.Errorf("Server.ReadTimeout = %q, want %q", cfg.Server.ReadTimeout, "10s")
	}
}

func TestLoad_DefaultsPreserved(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "verbose: true\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Server.Addr = %q, want default", cfg.Server.Addr)
	}
	if cfg.OnConflict != "overwrite" {
		t.Errorf("OnConflict = %q, want default", cfg.OnConflict)
	}
}

func TestLoad_InvalidConflict(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "on_conflict: explode\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("Load: got nil error, want validation failure")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "verbose: [unclosed\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("Load: got nil error, want parse failure")
	}
}
