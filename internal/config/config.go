// Package config loads the optional settings file. A missing path means
// defaults; a present file is validated before it is accepted.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"hexfield/internal/game"
)

// Config is the on-disk settings surface. Everything has a default so
// an empty file and no file behave the same.
type Config struct {
	Players   int      `yaml:"players"`
	Names     []string `yaml:"names,omitempty"`
	Seed      int64    `yaml:"seed"`
	WinPoints int      `yaml:"win_points"`
	SaveDir   string   `yaml:"save_dir"`
	Window    Window   `yaml:"window"`
}

// Window sizes the rendering surface.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func defaults() Config {
	return Config{
		Players:   3,
		WinPoints: game.DefaultWinPoints,
		SaveDir:   "saves",
		Window:    Window{Width: 1200, Height: 900},
	}
}

// Load reads a YAML settings file. An empty path returns the defaults
// without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Normalize fills zero values with defaults so partial files work.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	def := defaults()
	if c.Players == 0 {
		c.Players = def.Players
	}
	if c.WinPoints == 0 {
		c.WinPoints = def.WinPoints
	}
	if strings.TrimSpace(c.SaveDir) == "" {
		c.SaveDir = def.SaveDir
	}
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	for i := range c.Names {
		c.Names[i] = strings.TrimSpace(c.Names[i])
	}
}

func (c Config) Validate() error {
	if err := c.Session().Validate(); err != nil {
		return err
	}
	if c.Window.Width < 400 || c.Window.Height < 300 {
		return fmt.Errorf("window %dx%d is too small", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Session maps the settings onto a game session configuration.
func (c Config) Session() game.SessionConfig {
	return game.SessionConfig{
		PlayerCount: c.Players,
		PlayerNames: append([]string(nil), c.Names...),
		Seed:        c.Seed,
		WinPoints:   c.WinPoints,
	}
}
