package icosphere

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/icosphere/pkg/math"
)

// ErrOpenMesh is returned by CheckClosed when some edge is not shared by
// exactly two faces.
var ErrOpenMesh = errors.New("mesh is not closed")

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// ComputeBounds returns the bounding box of faces, or the zero box when
// there are none.
func ComputeBounds(faces []Triangle) Bounds {
	if len(faces) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: faces[0].v1, Max: faces[0].v1}
	for _, t := range faces {
		for _, v := range t.Vertices() {
			b.Min = math.Vec3{X: min(b.Min.X, v.X), Y: min(b.Min.Y, v.Y), Z: min(b.Min.Z, v.Z)}
			b.Max = math.Vec3{X: max(b.Max.X, v.X), Y: max(b.Max.Y, v.Y), Z: max(b.Max.Z, v.Z)}
		}
	}
	return b
}

// edge is an undirected edge keyed on exact vertex positions.
type edge [2]math.Vec3

func makeEdge(a, b math.Vec3) edge {
	if less(b, a) {
		a, b = b, a
	}
	return edge{a, b}
}

func less(a, b math.Vec3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// CheckClosed verifies that every undirected edge of faces is shared by
// exactly two faces. Shared vertices must be bit-identical, which holds
// for meshes built by Generate since neighbors derive them from the same
// endpoints.
func CheckClosed(faces []Triangle) error {
	counts := make(map[edge]int, len(faces)*3/2)
	for _, t := range faces {
		counts[makeEdge(t.v1, t.v2)]++
		counts[makeEdge(t.v2, t.v3)]++
		counts[makeEdge(t.v3, t.v1)]++
	}

	bad := 0
	for _, n := range counts {
		if n != 2 {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%w: %d of %d edges not shared by exactly two faces", ErrOpenMesh, bad, len(counts))
	}
	return nil
}

// MaxRadiusError returns the largest relative deviation of any vertex's
// distance from center compared to radius.
func MaxRadiusError(faces []Triangle, center math.Vec3, radius float32) float32 {
	var worst float32
	for _, t := range faces {
		for _, v := range t.Vertices() {
			d := v.Distance(center)
			worst = max(worst, math32.Abs(d-radius)/radius)
		}
	}
	return worst
}

// CountColor returns how many faces carry exactly color.
func CountColor(faces []Triangle, color math.Vec3) int {
	n := 0
	for _, t := range faces {
		if t.color == color {
			n++
		}
	}
	return n
}
