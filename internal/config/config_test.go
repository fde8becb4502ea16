package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quackscript/quack/internal/config"
)

func TestLoadOrDefaultFallsBackWhenFileIsMissing(t *testing.T) {
	cfg := config.LoadOrDefault(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	want := config.Default()
	if cfg.MaxImportDepth != want.MaxImportDepth || cfg.MaxCallDepth != want.MaxCallDepth ||
		cfg.Trace != want.Trace || len(cfg.ImportPaths) != 0 {
		t.Errorf("got %+v, want default %+v", cfg, want)
	}
}

func TestLoadParsesYAMLAndFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quack.yaml")
	content := "importPaths:\n  - ./lib\ntrace: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.ImportPaths) != 1 || cfg.ImportPaths[0] != "./lib" {
		t.Errorf("ImportPaths = %v", cfg.ImportPaths)
	}
	if !cfg.Trace {
		t.Error("Trace should be true")
	}
	if cfg.MaxImportDepth != 64 {
		t.Errorf("MaxImportDepth = %d, want default 64", cfg.MaxImportDepth)
	}
	if cfg.MaxCallDepth != 256 {
		t.Errorf("MaxCallDepth = %d, want default 256", cfg.MaxCallDepth)
	}
}

func TestLoadHonorsExplicitDepths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quack.yaml")
	if err := os.WriteFile(path, []byte("maxCallDepth: 10\nmaxImportDepth: 2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxCallDepth != 10 || cfg.MaxImportDepth != 2 {
		t.Errorf("got %+v", cfg)
	}
}
