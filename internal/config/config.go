// Package config loads optional toolkit settings from a diagrid.toml found
// in the working directory or any parent. Flags always override the file;
// the file only shifts defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full contents of diagrid.toml.
type Config struct {
	Verify VerifyConfig `toml:"verify"`
	Grid   GridConfig   `toml:"grid"`
}

// VerifyConfig tunes the diagram verifier.
type VerifyConfig struct {
	// BandTolerance is the max top-row distance for boxes to share a band.
	BandTolerance int `toml:"band_tolerance"`
	// BannedExtra lists additional glyphs to ban, as one string.
	BannedExtra string `toml:"banned_extra"`
	// Jobs caps parallel workers for batch verification (0 = auto).
	Jobs int `toml:"jobs"`
}

// GridConfig tunes the grid builder CLI.
type GridConfig struct {
	// Width is the default grid width.
	Width int `toml:"width"`
}

// Default returns the settings used when no diagrid.toml exists.
func Default() Config {
	return Config{
		Verify: VerifyConfig{BandTolerance: 1},
		Grid:   GridConfig{Width: 80},
	}
}

// find walks up from startDir looking for diagrid.toml.
func find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "diagrid.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load returns the effective configuration starting from startDir, the path
// of the file it came from ("" when none was found), and any load error.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	path, ok, err := find(startDir)
	if err != nil || !ok {
		return cfg, "", err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), path, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Verify.BandTolerance < 0 {
		return Default(), path, fmt.Errorf("%s: band_tolerance must not be negative", path)
	}
	if cfg.Grid.Width < 1 {
		return Default(), path, fmt.Errorf("%s: grid width must be at least 1", path)
	}
	return cfg, path, nil
}
