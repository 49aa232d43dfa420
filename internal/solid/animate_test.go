package solid

import (
	gomath "math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/polyspin/pkg/math"
)

func TestAdvanceZeroElapsedIsIdentity(t *testing.T) {
	s := NewScutoid(math.Vec3{X: 1, Z: -8}, math.Vec3{X: 1, Y: 1}, Options{Now: epoch})
	before := s.Transform

	s.Advance(0)

	require.True(t, s.Transform.ApproxEqual(before, 1e-7), "got %v, want %v", s.Transform, before)
}

func TestAdvanceFullPeriodRestoresOrientation(t *testing.T) {
	for _, axis := range []math.Vec3{{Y: 1}, {X: 1}, {X: 1, Y: 1, Z: 0.5}} {
		s := NewPyramid(math.Vec3{X: -2, Z: -8}, axis, Options{Now: epoch})
		before := s.Transform

		s.Advance(float64(DefaultPeriod / time.Millisecond))

		require.True(t, s.Transform.ApproxEqual(before, 1e-5), "axis %v: got %v", axis, s.Transform)
	}
}

func TestPyramidHalfPeriod(t *testing.T) {
	s := NewPyramid(math.Vec3{X: -2, Z: -8}, math.Vec3{Y: 1}, Options{Now: epoch})

	s.Update(epoch.Add(2500 * time.Millisecond))

	want := math.Translation(math.Vec3{X: -2, Z: -8}).Mul(math.RotateY(gomath.Pi))
	require.True(t, s.Transform.ApproxEqual(want, 1e-5), "got %v, want %v", s.Transform, want)
	require.Equal(t, epoch.Add(2500*time.Millisecond), s.LastUpdate)

	// a point in front of the solid ends up behind it
	p := s.Transform.TransformPoint(math.Vec3{Z: 1})
	require.InDelta(t, -2, p.X, 1e-5)
	require.InDelta(t, -9, p.Z, 1e-5)
}

func TestUpdateUsesElapsedSinceLastUpdate(t *testing.T) {
	a := NewPyramid(math.Vec3{}, math.Vec3{Z: 1}, Options{Now: epoch})
	b := NewPyramid(math.Vec3{}, math.Vec3{Z: 1}, Options{Now: epoch})

	// Four quarter updates equal one full turn applied at once.
	for i := 1; i <= 4; i++ {
		a.Update(epoch.Add(time.Duration(i) * 1250 * time.Millisecond))
	}
	b.Advance(5000)

	require.True(t, a.Transform.ApproxEqual(b.Transform, 1e-5))
	require.True(t, a.Transform.ApproxEqual(math.Identity(), 1e-5))
}

func TestAngle(t *testing.T) {
	require.InDelta(t, 0, Angle(0, DefaultPeriod), 1e-12)
	require.InDelta(t, gomath.Pi, Angle(2500, DefaultPeriod), 1e-12)
	require.InDelta(t, 2*gomath.Pi, Angle(5000, DefaultPeriod), 1e-12)
	require.InDelta(t, 4*gomath.Pi, Angle(5000, 2500*time.Millisecond), 1e-12)
}

func TestLargeGapIsNotClamped(t *testing.T) {
	s := NewPyramid(math.Vec3{}, math.Vec3{Y: 1}, Options{Now: epoch})
	s.Update(epoch.Add(time.Hour + 1250*time.Millisecond))

	// an hour is a whole number of turns; the extra quarter is what remains
	want := math.RotateY(gomath.Pi / 2)
	require.True(t, s.Transform.ApproxEqual(want, 1e-3), "got %v", s.Transform)
}

func TestOctahedronFlipsOnceIn31Steps(t *testing.T) {
	s := NewOctahedron(math.Vec3{X: 2, Z: -8}, math.Vec3{Y: 1}, Options{Now: epoch})
	osc := s.Oscillator

	for i := 1; i <= 31; i++ {
		s.Advance(16)
		if i < 30 {
			require.Zero(t, osc.Reversals, "step %d", i)
			require.Positive(t, osc.Step)
		}
	}

	require.Equal(t, 1, osc.Reversals)
	require.Negative(t, osc.Step)
	require.InDelta(t, 2.9, osc.Displacement, 1e-9)
}

func TestOscillatorStaysBounded(t *testing.T) {
	osc := NewOscillator(OscillatorConfig{Step: 0.1, Limit: 3})
	m := math.Identity()

	for i := 0; i < 1000; i++ {
		wasPositive := osc.Step > 0
		before := osc.Reversals
		osc.advance(&m)

		require.LessOrEqual(t, gomath.Abs(osc.Displacement), osc.Limit+gomath.Abs(osc.Step)+1e-9)
		if osc.Reversals != before {
			// reversal happens only once the bound is crossed, in the direction of travel
			if wasPositive {
				require.Greater(t, osc.Displacement, osc.Limit)
			} else {
				require.Less(t, osc.Displacement, -osc.Limit)
			}
		} else {
			require.LessOrEqual(t, gomath.Abs(osc.Displacement), osc.Limit)
		}
	}
	require.Equal(t, 17, osc.Reversals)
}

func TestOscillationMovesAlongLocalY(t *testing.T) {
	// With a Y rotation axis the local Y axis stays vertical.
	s := NewOctahedron(math.Vec3{X: 2, Z: -8}, math.Vec3{Y: 1}, Options{Now: epoch})
	for i := 0; i < 10; i++ {
		s.Advance(16)
	}

	pos := s.Transform.TranslationPart()
	require.InDelta(t, 2, pos.X, 1e-5)
	require.InDelta(t, 1.0, pos.Y, 1e-5)
	require.InDelta(t, -8, pos.Z, 1e-5)
	require.True(t, s.Transform.IsFinite())
}

func TestLongRunStaysFinite(t *testing.T) {
	s := NewScutoid(math.Vec3{Z: -8}, math.Vec3{X: 1, Y: 0.3, Z: 0.2}, Options{Now: epoch})
	for i := 0; i < 100000; i++ {
		s.Advance(16.7)
	}
	require.True(t, s.Transform.IsFinite())
}
