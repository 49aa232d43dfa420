// Package solid builds the animated polyhedra: vertex, color and index
// tables for each archetype plus the per-frame transform update.
package solid

import (
	"fmt"
	"time"

	"github.com/Faultbox/polyspin/pkg/math"
)

// Kind identifies one of the fixed archetypes.
type Kind int

const (
	Pyramid Kind = iota
	Scutoid
	Octahedron
)

// String returns the lower-case archetype name used in config files.
func (k Kind) String() string {
	switch k {
	case Pyramid:
		return "pyramid"
	case Scutoid:
		return "scutoid"
	case Octahedron:
		return "octahedron"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts an archetype name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "pyramid":
		return Pyramid, nil
	case "scutoid":
		return Scutoid, nil
	case "octahedron":
		return Octahedron, nil
	}
	return 0, fmt.Errorf("unknown solid kind %q", name)
}

const (
	// PositionSize is the number of floats per vertex position.
	PositionSize = 3
	// ColorSize is the number of floats per vertex color.
	ColorSize = 4
)

// Mesh holds flattened vertex data ready for buffer upload.
type Mesh struct {
	Positions []float32 // xyz per vertex
	Colors    []float32 // rgba per vertex
	Indices   []uint16  // triangle list
}

// VertexCount returns the number of vertices described by Positions.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / PositionSize
}

// TriangleCount returns the number of triangles described by Indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks the table invariants: one color per vertex and
// every index inside the vertex range.
func (m *Mesh) Validate() error {
	if len(m.Positions)%PositionSize != 0 {
		return fmt.Errorf("positions: length %d is not a multiple of %d", len(m.Positions), PositionSize)
	}
	if len(m.Colors)%ColorSize != 0 {
		return fmt.Errorf("colors: length %d is not a multiple of %d", len(m.Colors), ColorSize)
	}
	verts := m.VertexCount()
	if colors := len(m.Colors) / ColorSize; colors != verts {
		return fmt.Errorf("colors: %d entries for %d vertices", colors, verts)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("indices: length %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= verts {
			return fmt.Errorf("indices[%d] = %d out of range (%d vertices)", i, idx, verts)
		}
	}
	return nil
}

// Solid is one polyhedron with its placement and animation state.
// It is mutated only by its own Update/Advance calls.
type Solid struct {
	Kind      Kind
	Mesh      Mesh
	Transform math.Mat4

	// Axis is the rotation axis; it does not need to be unit length.
	Axis math.Vec3

	// Period is the time for one full turn.
	Period time.Duration

	// LastUpdate is the timestamp of the previous animation step.
	LastUpdate time.Time

	// Oscillator is set for solids that also bounce along their local Y axis.
	Oscillator *Oscillator
}

// Options tunes construction; zero values fall back to the defaults.
type Options struct {
	Period     time.Duration
	Oscillator OscillatorConfig
	Now        time.Time
}

func (o Options) withDefaults() Options {
	if o.Period <= 0 {
		o.Period = DefaultPeriod
	}
	if o.Oscillator.Step == 0 {
		o.Oscillator.Step = DefaultOscillationStep
	}
	if o.Oscillator.Limit <= 0 {
		o.Oscillator.Limit = DefaultOscillationLimit
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// New builds a solid of the given kind, placed at translation and spinning around axis.
func New(kind Kind, translation, axis math.Vec3, opts Options) (*Solid, error) {
	var mesh Mesh
	switch kind {
	case Pyramid:
		mesh = pyramidMesh()
	case Scutoid:
		mesh = scutoidMesh()
	case Octahedron:
		mesh = octahedronMesh()
	default:
		return nil, fmt.Errorf("unknown solid kind %d", int(kind))
	}
	return newSolid(kind, mesh, translation, axis, opts), nil
}

// NewPyramid builds a pentagonal pyramid.
func NewPyramid(translation, axis math.Vec3, opts Options) *Solid {
	return newSolid(Pyramid, pyramidMesh(), translation, axis, opts)
}

// NewScutoid builds a scutoid.
func NewScutoid(translation, axis math.Vec3, opts Options) *Solid {
	return newSolid(Scutoid, scutoidMesh(), translation, axis, opts)
}

// NewOctahedron builds an octahedron that also oscillates vertically.
func NewOctahedron(translation, axis math.Vec3, opts Options) *Solid {
	return newSolid(Octahedron, octahedronMesh(), translation, axis, opts)
}

func newSolid(kind Kind, mesh Mesh, translation, axis math.Vec3, opts Options) *Solid {
	if err := mesh.Validate(); err != nil {
		panic(fmt.Sprintf("%s mesh: %v", kind, err))
	}
	opts = opts.withDefaults()

	s := &Solid{
		Kind:       kind,
		Mesh:       mesh,
		Transform:  math.Identity(),
		Axis:       axis,
		Period:     opts.Period,
		LastUpdate: opts.Now,
	}
	s.Transform.Translate(translation)

	if kind == Octahedron {
		s.Oscillator = NewOscillator(opts.Oscillator)
	}
	return s
}
