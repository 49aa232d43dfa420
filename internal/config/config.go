// Package config handles configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Scene     SceneConfig     `yaml:"scene"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// AnimationConfig holds timing shared by all solids.
type AnimationConfig struct {
	Period           time.Duration `yaml:"period"`            // one full turn
	OscillationStep  float64       `yaml:"oscillation_step"`  // world units per frame
	OscillationLimit float64       `yaml:"oscillation_limit"` // bounce bound
}

// SceneConfig lists the solids to build, in draw and update order.
type SceneConfig struct {
	Solids []SolidConfig `yaml:"solids"`
}

// SolidConfig places one solid.
type SolidConfig struct {
	Kind        string     `yaml:"kind"`
	Translation [3]float32 `yaml:"translation"`
	Axis        [3]float32 `yaml:"axis"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock three-solid scene.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "polyspin",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Animation: AnimationConfig{
			Period:           5000 * time.Millisecond,
			OscillationStep:  0.1,
			OscillationLimit: 3,
		},
		Scene: SceneConfig{
			Solids: []SolidConfig{
				{Kind: "pyramid", Translation: [3]float32{-2, 0, -8}, Axis: [3]float32{0, 1, 0}},
				{Kind: "scutoid", Translation: [3]float32{0, 0, -8}, Axis: [3]float32{1, 1, 0.2}},
				{Kind: "octahedron", Translation: [3]float32{2, 0, -8}, Axis: [3]float32{0, 1, 0}},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot produce a working window or scene.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Animation.Period <= 0 {
		return fmt.Errorf("animation: period must be positive, got %s", c.Animation.Period)
	}
	if c.Animation.OscillationLimit <= 0 {
		return fmt.Errorf("animation: oscillation_limit must be positive, got %g", c.Animation.OscillationLimit)
	}
	if len(c.Scene.Solids) == 0 {
		return fmt.Errorf("scene: no solids")
	}
	return nil
}
