package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/tube-walk-go/internal/palette"
)

// Surfaces a frame can be presented on
const (
	SurfaceWindow   = "window"
	SurfaceTerminal = "terminal"
)

var ErrInvalid = errors.New("invalid config")

// Config holds the presentation settings. The simulation itself is not
// configurable.
type Config struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`  // Logical canvas width in pixels
	Height     int    `yaml:"height"` // Logical canvas height in pixels
	Scale      int    `yaml:"scale"`  // Initial window size multiplier
	TPS        int    `yaml:"tps"`    // Update ticks per second
	FrameRate  int    `yaml:"frame_rate"`
	Surface    string `yaml:"surface"`
	Background string `yaml:"background"`
}

// Default returns the settings used when no file is given
func Default() Config {
	return Config{
		Title:      "Tubes",
		Width:      100,
		Height:     100,
		Scale:      6,
		TPS:        60,
		FrameRate:  30,
		Surface:    SurfaceWindow,
		Background: "#000000ff",
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks sizes, rates and the surface name
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate %d", ErrInvalid, c.FrameRate)
	case c.Surface != SurfaceWindow && c.Surface != SurfaceTerminal:
		return fmt.Errorf("%w: surface %q", ErrInvalid, c.Surface)
	}
	if _, err := palette.ParseHex(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}
	return nil
}
