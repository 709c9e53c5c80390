package icosphere

import (
	"math/rand/v2"

	"github.com/Faultbox/icosphere/pkg/math"
)

// DefaultShadeDifference is subtracted from each channel of the base color
// to derive the shaded color when none is given.
const DefaultShadeDifference float32 = 0.2

// ShadeColor darkens base by diff per channel, clamping at 0.
func ShadeColor(base math.Vec3, diff float32) math.Vec3 {
	return math.Vec3{
		X: max(0, base.X-diff),
		Y: max(0, base.Y-diff),
		Z: max(0, base.Z-diff),
	}
}

// RandomColor returns a color with each channel uniform in [0, 1).
// A nil r uses the global source.
func RandomColor(r *rand.Rand) math.Vec3 {
	if r == nil {
		return math.Vec3{X: rand.Float32(), Y: rand.Float32(), Z: rand.Float32()}
	}
	return math.Vec3{X: r.Float32(), Y: r.Float32(), Z: r.Float32()}
}
