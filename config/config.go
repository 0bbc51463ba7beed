// Package config holds the TOML configuration of the termcanvas tools.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/termcanvas/layout"
	"github.com/lixenwraith/termcanvas/terminal"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the root of the configuration file
type Config struct {
	Render RenderConfig `toml:"render"`
	Sixel  SixelConfig  `toml:"sixel"`
	Log    LogConfig    `toml:"log"`
	Demo   DemoConfig   `toml:"demo"`
}

// RenderConfig controls terminal output
type RenderConfig struct {
	ColorMode  string `toml:"color_mode"`  // auto, 256 or truecolor
	CellWidth  int    `toml:"cell_width"`  // pixels, 0 asks the terminal
	CellHeight int    `toml:"cell_height"` // pixels, 0 asks the terminal
}

// SixelConfig controls raster image encoding
type SixelConfig struct {
	AlphaThreshold uint8 `toml:"alpha_threshold"`
}

// LogConfig controls the debug log
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DemoConfig sizes the panels of the demo command
type DemoConfig struct {
	Sidebar layout.Dimension `toml:"sidebar"`
	Footer  layout.Dimension `toml:"footer"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Render: RenderConfig{ColorMode: "auto"},
		Sixel:  SixelConfig{AlphaThreshold: 128},
		Log:    LogConfig{File: "termcanvas.log", Level: "info"},
		Demo: DemoConfig{
			Sidebar: layout.Pct(30),
			Footer:  layout.Chars(1),
		},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(base, "termcanvas", "config.toml"), nil
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	switch strings.ToLower(c.Render.ColorMode) {
	case "", "auto", "256", "truecolor", "true", "24bit":
	default:
		return fmt.Errorf("%w: render.color_mode %q", ErrInvalid, c.Render.ColorMode)
	}
	if c.Render.CellWidth < 0 || c.Render.CellHeight < 0 {
		return fmt.Errorf("%w: render cell size %dx%d", ErrInvalid, c.Render.CellWidth, c.Render.CellHeight)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	dims := []struct {
		name string
		d    layout.Dimension
	}{
		{"demo.sidebar", c.Demo.Sidebar},
		{"demo.footer", c.Demo.Footer},
	}
	for _, f := range dims {
		if !f.d.Resolvable() {
			return fmt.Errorf("%w: %s must resolve to a size, got %s", ErrInvalid, f.name, f.d)
		}
	}
	return nil
}

// Mode resolves the configured color mode, detecting it from the environment for auto
func (r RenderConfig) Mode() terminal.ColorMode {
	return terminal.ParseColorMode(r.ColorMode)
}

// SlogLevel parses the level name; empty means info
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}
