package icosphere

import "github.com/Faultbox/icosphere/pkg/math"

// Phi is the golden ratio.
const Phi float32 = 1.6180339

// IcosahedronFaces indexes the 20 faces of the icosahedron returned by
// IcosahedronVertices. Each face is wound counter-clockwise seen from
// outside, and every edge belongs to exactly two faces.
var IcosahedronFaces = [20][3]int{
	{0, 2, 10}, {0, 10, 5}, {0, 5, 4}, {0, 4, 8}, {0, 8, 2},
	{3, 1, 11}, {3, 11, 7}, {3, 7, 6}, {3, 6, 9}, {3, 9, 1},
	{2, 6, 7}, {2, 7, 10}, {10, 7, 11}, {10, 11, 5}, {5, 11, 1},
	{5, 1, 4}, {4, 1, 9}, {4, 9, 8}, {8, 9, 6}, {8, 6, 2},
}

// IcosahedronVertices returns the 12 corners of a regular icosahedron
// centered on the origin, built from three orthogonal golden rectangles
// and pushed out so every corner lies at distance radius.
func IcosahedronVertices(radius float32) [12]math.Vec3 {
	const a, b = 0.5, Phi / 2

	verts := [12]math.Vec3{
		{X: a, Y: 0, Z: b},
		{X: a, Y: 0, Z: -b},
		{X: -a, Y: 0, Z: b},
		{X: -a, Y: 0, Z: -b},
		{X: b, Y: a, Z: 0},
		{X: b, Y: -a, Z: 0},
		{X: -b, Y: a, Z: 0},
		{X: -b, Y: -a, Z: 0},
		{X: 0, Y: b, Z: a},
		{X: 0, Y: b, Z: -a},
		{X: 0, Y: -b, Z: a},
		{X: 0, Y: -b, Z: -a},
	}

	// The rectangles have circumradius ~0.951, not 1.
	for i := range verts {
		verts[i] = verts[i].Normalize().Scale(radius)
	}
	return verts
}
