package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "diagrid.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, path, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[verify]
band_tolerance = 2
banned_extra = "*#"
jobs = 4

[grid]
width = 100
`)
	cfg, path, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path == "" {
		t.Error("path empty, want config file path")
	}
	if cfg.Verify.BandTolerance != 2 || cfg.Verify.BannedExtra != "*#" || cfg.Verify.Jobs != 4 {
		t.Errorf("verify config = %+v", cfg.Verify)
	}
	if cfg.Grid.Width != 100 {
		t.Errorf("grid width = %d, want 100", cfg.Grid.Width)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[verify]\njobs = 2\n")
	cfg, _, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Verify.BandTolerance != 1 {
		t.Errorf("band_tolerance = %d, want default 1", cfg.Verify.BandTolerance)
	}
	if cfg.Grid.Width != 80 {
		t.Errorf("grid width = %d, want default 80", cfg.Grid.Width)
	}
}

func TestLoad_FindsFileInParent(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[grid]\nwidth = 60\n")
	child := filepath.Join(dir, "docs", "diagrams")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := Load(child)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Width != 60 {
		t.Errorf("grid width = %d, want 60 from parent config", cfg.Grid.Width)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative tolerance", "[verify]\nband_tolerance = -1\n"},
		{"zero width", "[grid]\nwidth = 0\n"},
		{"syntax error", "[verify\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)
			if _, _, err := Load(dir); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}
