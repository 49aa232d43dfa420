package shader

import _ "embed"

// FlatVertex projects positions and passes the vertex color through.
//
//go:embed glsl/flat.vert
var FlatVertex string

// FlatFragment outputs the interpolated vertex color unchanged.
//
//go:embed glsl/flat.frag
var FlatFragment string

// Attribute locations fixed by the layout qualifiers in flat.vert.
const (
	PositionLocation = 0
	ColorLocation    = 1
)
