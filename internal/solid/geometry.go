package solid

import gomath "math"

// RGBA color, one per face.
type RGBA [4]float32

var (
	red     = RGBA{1, 0, 0, 1}
	green   = RGBA{0, 1, 0, 1}
	blue    = RGBA{0, 0, 1, 1}
	yellow  = RGBA{1, 1, 0, 1}
	magenta = RGBA{1, 0, 1, 1}
	cyan    = RGBA{0, 1, 1, 1}
	white   = RGBA{1, 1, 1, 1}
	orange  = RGBA{1, 0.64, 0.12, 1}
)

const degToRad = gomath.Pi / 180

// ring returns the point at deg degrees on a circle of radius r in the XZ plane at height y.
func ring(deg, r, y float64) [3]float32 {
	rad := deg * degToRad
	return [3]float32{float32(gomath.Cos(rad) * r), float32(y), float32(gomath.Sin(rad) * r)}
}

func flatten(points ...[3]float32) []float32 {
	out := make([]float32, 0, len(points)*PositionSize)
	for _, p := range points {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// faceColors broadcasts each face color to that face's vertex count.
func faceColors(colors []RGBA, counts []int) []float32 {
	if len(colors) != len(counts) {
		panic("faceColors: colors and counts differ in length")
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	out := make([]float32, 0, total*ColorSize)
	for i, c := range colors {
		for j := 0; j < counts[i]; j++ {
			out = append(out, c[:]...)
		}
	}
	return out
}

// pyramidMesh: five sides fanning from the apex plus the pentagon base.
func pyramidMesh() Mesh {
	var (
		apex = [3]float32{0, 1, 0}
		a    = ring(162, 1, 0)
		b    = ring(234, 1, 0)
		c    = [3]float32{0, 0, 1}
		d    = ring(306, 1, 0)
		e    = ring(18, 1, 0)
	)

	positions := flatten(
		a, c, apex,
		c, e, apex,
		e, d, apex,
		d, b, apex,
		b, a, apex,
		// base
		a, b, c, d, e,
	)

	colors := faceColors(
		[]RGBA{red, green, blue, yellow, magenta, cyan},
		[]int{3, 3, 3, 3, 3, 5},
	)

	indices := []uint16{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
		9, 10, 11,
		12, 13, 14,
		15, 16, 17, 16, 17, 18, 17, 18, 19,
	}

	return Mesh{Positions: positions, Colors: colors, Indices: indices}
}

// scutoidMesh: hexagonal top, pentagonal base, one triangular middle face.
func scutoidMesh() Mesh {
	const r = 0.5
	var (
		// top hexagon, y = 1
		h0   = [3]float32{0.5, 1, 0}
		h60  = ring(60, r, 1)
		h120 = ring(120, r, 1)
		h180 = [3]float32{-0.5, 1, 0}
		h240 = ring(240, r, 1)
		h300 = ring(300, r, 1)

		// bottom pentagon, y = 0
		p18  = ring(18, r, 0)
		p90  = [3]float32{0, 0, 0.5}
		p162 = ring(162, r, 0)
		p234 = ring(234, r, 0)
		p306 = ring(306, r, 0)

		mid = [3]float32{0, 0.5, 0.5}
	)

	positions := flatten(
		h0, h60, h300, h240, h120, h180, // top
		p162, p234, h180, h240,
		p234, p306, h240, h300,
		p306, p18, h300, h0,
		p162, p234, p90, p306, p18, // bottom
		mid, h60, h120,
		h0, h60, p18, mid, p90,
		h180, h120, p162, mid, p90,
	)

	colors := faceColors(
		[]RGBA{white, red, green, blue, yellow, magenta, cyan, orange},
		[]int{6, 4, 4, 4, 5, 3, 5, 5},
	)

	indices := []uint16{
		0, 1, 2, 1, 2, 3, 1, 3, 4, 3, 4, 5,
		6, 7, 8, 7, 8, 9,
		10, 11, 12, 11, 12, 13,
		14, 15, 16, 15, 16, 17,
		18, 19, 20, 19, 20, 21, 20, 21, 22,
		23, 24, 25,
		26, 27, 28, 27, 28, 29, 28, 29, 30,
		31, 32, 33, 32, 33, 34, 33, 34, 35,
	}

	return Mesh{Positions: positions, Colors: colors, Indices: indices}
}

// octahedronMesh: four faces up to (0,1,0), four down to (0,-1,0), unshared vertices.
func octahedronMesh() Mesh {
	var (
		top    = [3]float32{0, 1, 0}
		bottom = [3]float32{0, -1, 0}
		square = [4][3]float32{
			{-0.5, 0, 0.5},
			{0.5, 0, 0.5},
			{0.5, 0, -0.5},
			{-0.5, 0, -0.5},
		}
	)

	points := make([][3]float32, 0, 24)
	for _, apex := range [][3]float32{top, bottom} {
		for i := range square {
			points = append(points, square[i], square[(i+1)%len(square)], apex)
		}
	}

	colors := faceColors(
		[]RGBA{white, red, green, blue, yellow, magenta, cyan, orange},
		[]int{3, 3, 3, 3, 3, 3, 3, 3},
	)

	indices := make([]uint16, len(points))
	for i := range indices {
		indices[i] = uint16(i)
	}

	return Mesh{Positions: flatten(points...), Colors: colors, Indices: indices}
}
