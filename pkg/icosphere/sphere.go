// Package icosphere builds sphere meshes by recursively subdividing a
// regular icosahedron. Faces are flat-colored: the upper hemisphere gets
// the base color and the lower hemisphere a darker shaded color.
package icosphere

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/chewxy/math32"
	opt "github.com/repeale/fp-go/option"
	"go.uber.org/zap"

	"github.com/Faultbox/icosphere/pkg/math"
)

const (
	// DefaultRadius is used when Options.Radius is not set.
	DefaultRadius float32 = 1
	// DefaultDepth is the default number of subdivision passes (5120 faces).
	DefaultDepth = 4
	// MaxDepth caps subdivision at 20*4^10 (about 21M) faces.
	MaxDepth = 10
)

// Generation errors.
var (
	ErrInvalidRadius = errors.New("radius must be positive and finite")
	ErrInvalidDepth  = errors.New("depth must not be negative")
	ErrDepthTooLarge = errors.New("depth exceeds maximum")
)

// Options configures a Sphere. Every field may be left at its zero value.
type Options struct {
	// Center is the world-space position of the sphere (default origin).
	Center math.Vec3
	// BaseColor colors the upper hemisphere. Random when unset.
	BaseColor opt.Option[math.Vec3]
	// ShadedColor colors the lower hemisphere. When unset it is derived
	// from BaseColor and ShadeDifference.
	ShadedColor opt.Option[math.Vec3]
	// ShadeDifference defaults to DefaultShadeDifference.
	ShadeDifference opt.Option[float32]
	// Radius defaults to DefaultRadius.
	Radius opt.Option[float32]
	// Depth defaults to DefaultDepth.
	Depth opt.Option[int]
	// Workers > 1 generates the 20 base faces on a worker pool.
	Workers int
	// Rand is the source for random base colors (nil uses the global one).
	Rand *rand.Rand
	// Logger receives generation events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Sphere holds the parameters of an icosphere and the faces generated so
// far. A Sphere is not safe for concurrent use.
type Sphere struct {
	position    math.Vec3
	color       math.Vec3
	colorShaded math.Vec3
	radius      float32
	depth       int
	workers     int

	faces []Triangle
	log   *zap.Logger
}

// New creates an unpopulated sphere from opts. Radius and depth are
// validated by Generate, not here.
func New(opts Options) *Sphere {
	s := &Sphere{
		position: opts.Center,
		radius:   DefaultRadius,
		depth:    DefaultDepth,
		workers:  opts.Workers,
		log:      opts.Logger,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	if opt.IsNone(opts.BaseColor) {
		s.color = RandomColor(opts.Rand)
	} else {
		s.color = opts.BaseColor.Value
	}

	if opt.IsNone(opts.ShadedColor) {
		diff := DefaultShadeDifference
		if !opt.IsNone(opts.ShadeDifference) {
			diff = opts.ShadeDifference.Value
		}
		s.colorShaded = ShadeColor(s.color, diff)
	} else {
		s.colorShaded = opts.ShadedColor.Value
	}

	if !opt.IsNone(opts.Radius) {
		s.radius = opts.Radius.Value
	}
	if !opt.IsNone(opts.Depth) {
		s.depth = opts.Depth.Value
	}
	return s
}

// SetRadius changes the radius used by the next Generate call.
// Faces that were already generated keep their size.
func (s *Sphere) SetRadius(r float32) {
	s.radius = r
}

// SetDepth changes the subdivision depth used by the next Generate call.
func (s *Sphere) SetDepth(depth int) {
	s.depth = depth
}

// MoveTo sets the center used by the next Generate call.
func (s *Sphere) MoveTo(position math.Vec3) {
	s.position = position
}

// SetColor sets the base color. The shaded color is left alone; call
// GenerateShadedColor to derive a new one.
func (s *Sphere) SetColor(color math.Vec3) {
	s.color = color
}

// SetShadedColor sets the shaded color.
func (s *Sphere) SetShadedColor(color math.Vec3) {
	s.colorShaded = color
}

// GenerateShadedColor derives the shaded color from the current base color.
func (s *Sphere) GenerateShadedColor(diff float32) {
	s.colorShaded = ShadeColor(s.color, diff)
}

// Position returns the sphere center.
func (s *Sphere) Position() math.Vec3 { return s.position }

// Color returns the base color.
func (s *Sphere) Color() math.Vec3 { return s.color }

// ShadedColor returns the shaded color.
func (s *Sphere) ShadedColor() math.Vec3 { return s.colorShaded }

// Radius returns the radius used by the next Generate call.
func (s *Sphere) Radius() float32 { return s.radius }

// Depth returns the subdivision depth used by the next Generate call.
func (s *Sphere) Depth() int { return s.depth }

// Generate subdivides the icosahedron with the current radius, depth,
// position and colors, and appends the resulting FaceCount(depth)
// triangles to the sphere's faces.
//
// Calling Generate again appends a second copy of the geometry; call
// Reset first to replace it. On error the faces are left unchanged.
func (s *Sphere) Generate() error {
	if err := s.validate(); err != nil {
		return err
	}

	start := time.Now()
	base := IcosahedronVertices(s.radius)
	p := painter{center: s.position, color: s.color, shaded: s.colorShaded}

	var (
		faces []Triangle
		err   error
	)
	if s.workers > 1 {
		faces, err = s.generateParallel(base, p)
	} else {
		faces, err = s.generateSequential(base, p)
	}
	if err != nil {
		return fmt.Errorf("generating icosphere: %w", err)
	}

	s.faces = append(s.faces, faces...)

	s.log.Debug("generated icosphere",
		zap.Int("depth", s.depth),
		zap.Float32("radius", s.radius),
		zap.Int("workers", max(s.workers, 1)),
		zap.Int("faces", len(faces)),
		zap.Int("total_faces", len(s.faces)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (s *Sphere) validate() error {
	if !(s.radius > 0) || math32.IsInf(s.radius, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, s.radius)
	}
	if s.depth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, s.depth)
	}
	if s.depth > MaxDepth {
		return fmt.Errorf("%w: %d > %d", ErrDepthTooLarge, s.depth, MaxDepth)
	}
	return nil
}

func (s *Sphere) generateSequential(base [12]math.Vec3, p painter) ([]Triangle, error) {
	out := make([]Triangle, 0, FaceCount(s.depth))
	var err error
	for i, f := range IcosahedronFaces {
		out, err = subdivide(out, base[f[0]], base[f[1]], base[f[2]], s.depth, s.radius, p)
		if err != nil {
			return nil, fmt.Errorf("base face %d: %w", i, err)
		}
	}
	return out, nil
}

// Reset discards all generated faces.
func (s *Sphere) Reset() {
	s.faces = nil
}

// Populated reports whether Generate has produced any faces.
func (s *Sphere) Populated() bool {
	return len(s.faces) > 0
}

// FaceCount returns the number of generated faces.
func (s *Sphere) FaceCount() int {
	return len(s.faces)
}

// Faces returns a copy of the generated faces in generation order.
func (s *Sphere) Faces() []Triangle {
	out := make([]Triangle, len(s.faces))
	copy(out, s.faces)
	return out
}

// Transformed returns the generated faces transformed by m.
func (s *Sphere) Transformed(m math.Mat4) []Triangle {
	out := make([]Triangle, len(s.faces))
	for i, t := range s.faces {
		out[i] = t.Transform(m)
	}
	return out
}

// Bounds returns the bounding box of the generated faces.
func (s *Sphere) Bounds() Bounds {
	return ComputeBounds(s.faces)
}
