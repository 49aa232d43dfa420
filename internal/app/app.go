// Package app wires the window, renderer and frame driver together and
// runs the display loop.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/polyspin/internal/config"
	"github.com/Faultbox/polyspin/internal/engine/input"
	"github.com/Faultbox/polyspin/internal/engine/renderer"
	"github.com/Faultbox/polyspin/internal/engine/window"
	"github.com/Faultbox/polyspin/internal/frame"
	"github.com/Faultbox/polyspin/internal/logger"
	"github.com/Faultbox/polyspin/internal/scene"
)

// App is the running visualization.
type App struct {
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	driver   *frame.Driver
}

// New creates the window, GL program and solids.
func New(cfg *config.Config) (*App, error) {
	a := &App{}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, since the GL context must exist.
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	solids, err := scene.Build(cfg.Scene, cfg.Animation, time.Now())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	if err := a.renderer.Upload(solids...); err != nil {
		a.Close()
		return nil, err
	}

	a.input = input.New()
	a.driver = frame.NewDriver(a.renderer, solids, time.Now)

	logger.Info("scene ready", zap.Int("solids", len(solids)))
	return a, nil
}

// Run ticks the frame driver once per buffer swap until the window is
// closed or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	logger.Info("starting render loop")

	for {
		if ctx.Err() != nil {
			logger.Info("render loop cancelled", zap.Uint64("frames", a.driver.Frames()))
			return nil
		}

		if a.input.Update() {
			logger.Info("quit requested", zap.Uint64("frames", a.driver.Frames()))
			return nil
		}
		for _, ev := range a.input.Events() {
			if ev.Type == input.EventWindowResize {
				a.renderer.Resize(a.window.DrawableSize())
			}
		}

		if err := a.driver.Tick(); err != nil {
			return err
		}
		a.window.SwapBuffers()
	}
}

// Close releases GL resources and the window.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
