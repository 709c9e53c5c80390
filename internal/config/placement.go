package config

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/icosphere/pkg/math"
)

// PlacementConfig positions the generated mesh in the scene. Rotation
// and scale pivot on the sphere center, so generation itself is
// unaffected.
type PlacementConfig struct {
	Rotate [3]float32 `yaml:"rotate"` // degrees about X, Y, Z, applied in that order
	Scale  float32    `yaml:"scale"`
}

// IsIdentity reports whether the placement leaves the mesh where it is.
func (p PlacementConfig) IsIdentity() bool {
	return p.Rotate == [3]float32{} && p.Scale == 1
}

// PlacementMatrix returns the transform that scales, then rotates the
// generated mesh about its center.
func (c *Config) PlacementMatrix() math.Mat4 {
	center := toVec3(c.Sphere.Center)
	rad := func(deg float32) float32 { return deg * math32.Pi / 180 }
	s := c.Placement.Scale

	return math.TranslateVec3(center).
		Mul(math.RotateZ(rad(c.Placement.Rotate[2]))).
		Mul(math.RotateY(rad(c.Placement.Rotate[1]))).
		Mul(math.RotateX(rad(c.Placement.Rotate[0]))).
		Mul(math.Scale(s, s, s)).
		Mul(math.TranslateVec3(center.Scale(-1)))
}
