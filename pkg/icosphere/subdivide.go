package icosphere

import (
	"fmt"

	"github.com/Faultbox/icosphere/pkg/math"
)

// FaceCount returns the number of leaf triangles produced at depth:
// each level splits every face in four, starting from 20. Negative
// depths produce nothing.
func FaceCount(depth int) int {
	if depth < 0 {
		return 0
	}
	return len(IcosahedronFaces) << (2 * depth)
}

// painter colors an origin-centered leaf and moves it to world space.
type painter struct {
	center math.Vec3
	color  math.Vec3
	shaded math.Vec3
}

// paint builds the output triangle for one leaf. Faces with any vertex
// above the equator get the base color, the rest get the shaded color.
func (p painter) paint(v1, v2, v3 math.Vec3) Triangle {
	color := p.shaded
	if v1.Y > 0 || v2.Y > 0 || v3.Y > 0 {
		color = p.color
	}

	// v1..v3 are copies; translating them does not touch the caller's vertices.
	v1.AddAssign(p.center)
	v2.AddAssign(p.center)
	v3.AddAssign(p.center)
	return NewTriangle(v1, v2, v3, color)
}

// subdivide splits the triangle (v1, v2, v3) depth times, projecting every
// new vertex onto the sphere of the given radius, and appends the leaves
// to dst in recursion order. It only writes to dst.
func subdivide(dst []Triangle, v1, v2, v3 math.Vec3, depth int, radius float32, p painter) ([]Triangle, error) {
	if depth == 0 {
		return append(dst, p.paint(v1, v2, v3)), nil
	}

	v12 := v1.Midpoint(v2)
	v23 := v2.Midpoint(v3)
	v31 := v3.Midpoint(v1)
	for _, v := range [...]*math.Vec3{&v12, &v23, &v31} {
		if err := v.NormalizeTo(radius); err != nil {
			return dst, fmt.Errorf("midpoint at depth %d: %w", depth, err)
		}
	}

	children := [4][3]math.Vec3{
		{v1, v12, v31},
		{v2, v23, v12},
		{v3, v31, v23},
		{v12, v23, v31},
	}

	var err error
	for _, c := range children {
		dst, err = subdivide(dst, c[0], c[1], c[2], depth-1, radius, p)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}
