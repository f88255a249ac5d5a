package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("output dir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.Manifest || cfg.Preview || cfg.Show {
		t.Errorf("extras should default off: %+v", cfg)
	}
	if cfg.PreviewScale != 8 {
		t.Errorf("preview scale = %d, want 8", cfg.PreviewScale)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ICONS_OUTPUT_DIR", "/tmp/icons")
	t.Setenv("ICONS_MANIFEST", "true")
	t.Setenv("ICONS_PREVIEW_SCALE", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "/tmp/icons" || !cfg.Manifest || cfg.PreviewScale != 4 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("ICONS_PREVIEW_SCALE", "big")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsZeroScale(t *testing.T) {
	t.Setenv("ICONS_PREVIEW_SCALE", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}
