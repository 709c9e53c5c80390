package icosphere

import "github.com/Faultbox/icosphere/pkg/math"

// Triangle is one flat-colored face of a generated mesh, in world space.
// Its vertices are wound counter-clockwise when seen from outside the sphere.
type Triangle struct {
	v1, v2, v3 math.Vec3
	color      math.Vec3
}

// NewTriangle creates a triangle from three positions and a color.
func NewTriangle(v1, v2, v3, color math.Vec3) Triangle {
	return Triangle{v1: v1, v2: v2, v3: v3, color: color}
}

// V1 returns the first vertex.
func (t Triangle) V1() math.Vec3 { return t.v1 }

// V2 returns the second vertex.
func (t Triangle) V2() math.Vec3 { return t.v2 }

// V3 returns the third vertex.
func (t Triangle) V3() math.Vec3 { return t.v3 }

// Color returns the face color.
func (t Triangle) Color() math.Vec3 { return t.color }

// Vertices returns the three vertices in winding order.
func (t Triangle) Vertices() [3]math.Vec3 {
	return [3]math.Vec3{t.v1, t.v2, t.v3}
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() math.Vec3 {
	return t.v1.Add(t.v2).Add(t.v3).Scale(1.0 / 3.0)
}

// Transform returns a copy of t with every vertex transformed by m.
// The color is kept as is.
func (t Triangle) Transform(m math.Mat4) Triangle {
	return Triangle{
		v1:    m.TransformVec3(t.v1),
		v2:    m.TransformVec3(t.v2),
		v3:    m.TransformVec3(t.v3),
		color: t.color,
	}
}
