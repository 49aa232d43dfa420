package solid

import (
	gomath "math"
	"time"

	"github.com/Faultbox/polyspin/pkg/math"
)

const (
	// DefaultPeriod is one full rotation.
	DefaultPeriod = 5000 * time.Millisecond

	// DefaultOscillationStep is the per-frame vertical move in world units.
	DefaultOscillationStep = 0.1

	// DefaultOscillationLimit bounds the accumulated vertical displacement.
	DefaultOscillationLimit = 3.0
)

// OscillatorConfig holds the tunables of a vertical bounce.
type OscillatorConfig struct {
	Step  float64
	Limit float64
}

// Oscillator moves a solid back and forth along its local Y axis, one
// fixed step per frame, reversing when the displacement leaves [-Limit, Limit].
type Oscillator struct {
	Step         float64
	Limit        float64
	Displacement float64
	Reversals    int
}

// NewOscillator returns an oscillator at rest displacement 0.
func NewOscillator(cfg OscillatorConfig) *Oscillator {
	return &Oscillator{Step: cfg.Step, Limit: cfg.Limit}
}

// advance applies one step to transform and flips direction past the limit.
func (o *Oscillator) advance(transform *math.Mat4) {
	transform.Translate(math.Vec3{Y: float32(o.Step)})
	o.Displacement += o.Step
	if o.Displacement > o.Limit || o.Displacement < -o.Limit {
		o.Step = -o.Step
		o.Reversals++
	}
}

// Angle returns the rotation in radians covered in deltaMillis for the given period.
func Angle(deltaMillis float64, period time.Duration) float64 {
	fraction := deltaMillis / (float64(period) / float64(time.Millisecond))
	return 2 * gomath.Pi * fraction
}

// Advance rotates the solid by the angle covered in deltaMillis and, for
// oscillating solids, moves it one step. The rotation is composed onto
// the current transform, so orientation accumulates frame over frame.
func (s *Solid) Advance(deltaMillis float64) {
	s.Transform.Rotate(Angle(deltaMillis, s.Period), s.Axis)
	if s.Oscillator != nil {
		s.Oscillator.advance(&s.Transform)
	}
}

// Update advances the solid by the wall-clock time elapsed since the previous update.
func (s *Solid) Update(now time.Time) {
	delta := now.Sub(s.LastUpdate)
	s.LastUpdate = now
	s.Advance(float64(delta) / float64(time.Millisecond))
}
