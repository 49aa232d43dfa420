// Package frame drives the per-tick render-then-update cycle over a fixed set of solids.
package frame

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/polyspin/internal/logger"
	"github.com/Faultbox/polyspin/internal/solid"
)

// Renderer draws the current state of every solid.
type Renderer interface {
	Render(solids []*solid.Solid) error
}

// Clock returns the current time.
type Clock func() time.Time

// Driver runs one render plus one update pass per tick. The tick source
// (vsync swap, test loop) belongs to the caller.
type Driver struct {
	renderer Renderer
	solids   []*solid.Solid
	clock    Clock

	frames     uint64
	fpsFrames  int
	fpsStarted time.Time
}

// NewDriver creates a driver over solids. A nil clock uses time.Now.
func NewDriver(r Renderer, solids []*solid.Solid, clock Clock) *Driver {
	if clock == nil {
		clock = time.Now
	}
	return &Driver{
		renderer:   r,
		solids:     solids,
		clock:      clock,
		fpsStarted: clock(),
	}
}

// Solids returns the driven solids in update order.
func (d *Driver) Solids() []*solid.Solid {
	return d.solids
}

// Frames returns the number of completed ticks.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Tick renders every solid, then updates each one in array order.
// Each frame therefore shows the transforms left by the previous tick.
func (d *Driver) Tick() error {
	if err := d.renderer.Render(d.solids); err != nil {
		return fmt.Errorf("render frame %d: %w", d.frames, err)
	}

	now := d.clock()
	for _, s := range d.solids {
		s.Update(now)
	}

	d.frames++
	d.countFPS(now)
	return nil
}

// Advance moves every solid forward by the same elapsed time.
func Advance(solids []*solid.Solid, elapsedMillis float64) {
	for _, s := range solids {
		s.Advance(elapsedMillis)
	}
}

func (d *Driver) countFPS(now time.Time) {
	d.fpsFrames++
	if elapsed := now.Sub(d.fpsStarted); elapsed >= time.Second {
		logger.Debug("fps",
			zap.Int("frames", d.fpsFrames),
			zap.Duration("window", elapsed),
		)
		d.fpsFrames = 0
		d.fpsStarted = now
	}
}
