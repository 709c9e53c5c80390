package icosphere

import (
	"testing"

	"github.com/Faultbox/icosphere/pkg/math"
)

func TestIcosahedronVertices(t *testing.T) {
	verts := IcosahedronVertices(2)

	for i, v := range verts {
		if l := v.Length(); l < 1.9999 || l > 2.0001 {
			t.Errorf("vertex %d: length %v, want 2", i, l)
		}
	}
}

func TestIcosahedronEdgesEqual(t *testing.T) {
	verts := IcosahedronVertices(1)

	// Every face of a regular icosahedron is equilateral with the same edge.
	want := verts[0].Distance(verts[2])
	for i, f := range IcosahedronFaces {
		for j := 0; j < 3; j++ {
			a, b := verts[f[j]], verts[f[(j+1)%3]]
			if d := a.Distance(b); d < want-1e-5 || d > want+1e-5 {
				t.Errorf("face %d edge %d: length %v, want %v", i, j, d, want)
			}
		}
	}
}

func TestIcosahedronFacesCoverEdgesTwice(t *testing.T) {
	directed := make(map[[2]int]int)
	undirected := make(map[[2]int]int)
	degree := make(map[int]int)

	for _, f := range IcosahedronFaces {
		for j := 0; j < 3; j++ {
			a, b := f[j], f[(j+1)%3]
			directed[[2]int{a, b}]++
			undirected[[2]int{min(a, b), max(a, b)}]++
			degree[a]++
		}
	}

	if len(undirected) != 30 {
		t.Errorf("expected 30 edges, got %d", len(undirected))
	}
	for e, n := range undirected {
		if n != 2 {
			t.Errorf("edge %v shared by %d faces, want 2", e, n)
		}
	}
	// Consistent winding means each directed edge appears once.
	for e, n := range directed {
		if n != 1 {
			t.Errorf("directed edge %v appears %d times", e, n)
		}
	}
	for v := 0; v < 12; v++ {
		if degree[v] != 5 {
			t.Errorf("vertex %d touches %d faces, want 5", v, degree[v])
		}
	}
}

func TestTriangleAccessors(t *testing.T) {
	v1 := math.Vec3{X: 3}
	v2 := math.Vec3{Y: 3}
	v3 := math.Vec3{Z: 3}
	color := math.Vec3{X: 0.2, Y: 0.4, Z: 0.6}
	tri := NewTriangle(v1, v2, v3, color)

	if tri.V1() != v1 || tri.V2() != v2 || tri.V3() != v3 {
		t.Errorf("vertices = %v, want %v %v %v", tri.Vertices(), v1, v2, v3)
	}
	if tri.Color() != color {
		t.Errorf("color = %v, want %v", tri.Color(), color)
	}
	if c := tri.Centroid(); !c.ApproxEqual(math.Vec3{X: 1, Y: 1, Z: 1}, 1e-6) {
		t.Errorf("centroid = %v, want (1, 1, 1)", c)
	}

	moved := tri.Transform(math.Translate(1, 0, 0))
	if moved.V1() != (math.Vec3{X: 4}) || moved.Color() != color {
		t.Errorf("transform: got %v color %v", moved.V1(), moved.Color())
	}
	if tri.V1() != v1 {
		t.Error("Transform modified the original triangle")
	}
}
