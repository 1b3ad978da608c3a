// Package config holds the construction inputs of a renderer and loads them
// from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ushitora-anqou/aqpix/color"
	"github.com/ushitora-anqou/aqpix/constant"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid configuration")

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	Title  string `yaml:"title"`
	Window Size   `yaml:"window"`
	// Buffer is the pixel resolution of the surface buffer. It may differ
	// from Window, in which case the back-end scales on presentation.
	Buffer      Size    `yaml:"buffer"`
	RefreshRate float64 `yaml:"refresh_rate"`
	Background  string  `yaml:"background"`
}

func Default() Config {
	return Config{
		Title:       constant.WINDOW_TITLE,
		Window:      Size{constant.WINDOW_WIDTH, constant.WINDOW_HEIGHT},
		Buffer:      Size{constant.BUFFER_WIDTH, constant.BUFFER_HEIGHT},
		RefreshRate: constant.REFRESH_RATE,
		Background:  "black",
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Buffer.Width <= 0 || c.Buffer.Height <= 0 {
		return fmt.Errorf("%w: buffer size %dx%d", ErrInvalid, c.Buffer.Width, c.Buffer.Height)
	}
	if !(c.RefreshRate > 0) || math.IsInf(c.RefreshRate, 0) {
		return fmt.Errorf("%w: refresh rate %v", ErrInvalid, c.RefreshRate)
	}
	if _, err := color.Parse(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}
	return nil
}

// BackgroundColor returns the parsed background, or black when it does not
// parse.
func (c *Config) BackgroundColor() color.Color {
	bg, err := color.Parse(c.Background)
	if err != nil {
		return color.Black
	}
	return bg
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
