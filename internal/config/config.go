// Package config handles icosphere generation settings.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/chewxy/math32"
	opt "github.com/repeale/fp-go/option"
	"go.uber.org/zap"

	"github.com/Faultbox/icosphere/pkg/icosphere"
	"github.com/Faultbox/icosphere/pkg/math"
)

// Config holds all settings.
type Config struct {
	Sphere     SphereConfig     `yaml:"sphere"`
	Generation GenerationConfig `yaml:"generation"`
	Placement  PlacementConfig  `yaml:"placement"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SphereConfig describes the sphere to build.
type SphereConfig struct {
	Center          [3]float32  `yaml:"center"`
	Color           *[3]float32 `yaml:"color,omitempty"`        // nil = random
	ShadedColor     *[3]float32 `yaml:"shaded_color,omitempty"` // nil = derived from color
	ShadeDifference float32     `yaml:"shade_difference"`
	Radius          float32     `yaml:"radius"`
}

// GenerationConfig holds subdivision settings.
type GenerationConfig struct {
	Depth   int    `yaml:"depth"`
	Workers int    `yaml:"workers"` // 0 or 1 = sequential
	Seed    uint64 `yaml:"seed"`    // random color seed, 0 = unseeded
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sphere: SphereConfig{
			ShadeDifference: icosphere.DefaultShadeDifference,
			Radius:          icosphere.DefaultRadius,
		},
		Generation: GenerationConfig{
			Depth:   icosphere.DefaultDepth,
			Workers: 1,
		},
		Placement: PlacementConfig{
			Scale: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every setting that cannot produce a sphere.
func (c *Config) Validate() error {
	var errs []error
	if !(c.Sphere.Radius > 0) || math32.IsInf(c.Sphere.Radius, 1) {
		errs = append(errs, fmt.Errorf("sphere.radius must be positive and finite, got %v", c.Sphere.Radius))
	}
	if c.Sphere.ShadeDifference < 0 {
		errs = append(errs, fmt.Errorf("sphere.shade_difference must not be negative, got %v", c.Sphere.ShadeDifference))
	}
	if err := checkColor("sphere.color", c.Sphere.Color); err != nil {
		errs = append(errs, err)
	}
	if err := checkColor("sphere.shaded_color", c.Sphere.ShadedColor); err != nil {
		errs = append(errs, err)
	}
	if c.Generation.Depth < 0 || c.Generation.Depth > icosphere.MaxDepth {
		errs = append(errs, fmt.Errorf("generation.depth must be in [0, %d], got %d", icosphere.MaxDepth, c.Generation.Depth))
	}
	if c.Generation.Workers < 0 {
		errs = append(errs, fmt.Errorf("generation.workers must not be negative, got %d", c.Generation.Workers))
	}
	if !(c.Placement.Scale > 0) || math32.IsInf(c.Placement.Scale, 1) {
		errs = append(errs, fmt.Errorf("placement.scale must be positive and finite, got %v", c.Placement.Scale))
	}
	return errors.Join(errs...)
}

func checkColor(name string, c *[3]float32) error {
	if c == nil {
		return nil
	}
	for _, ch := range c {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("%s channels must be in [0, 1], got %v", name, *c)
		}
	}
	return nil
}

// SphereOptions converts the config into builder options.
func (c *Config) SphereOptions(log *zap.Logger) icosphere.Options {
	opts := icosphere.Options{
		Center:          toVec3(c.Sphere.Center),
		ShadeDifference: opt.Some(c.Sphere.ShadeDifference),
		Radius:          opt.Some(c.Sphere.Radius),
		Depth:           opt.Some(c.Generation.Depth),
		Workers:         c.Generation.Workers,
		Logger:          log,
	}
	if c.Sphere.Color != nil {
		opts.BaseColor = opt.Some(toVec3(*c.Sphere.Color))
	}
	if c.Sphere.ShadedColor != nil {
		opts.ShadedColor = opt.Some(toVec3(*c.Sphere.ShadedColor))
	}
	if c.Generation.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(c.Generation.Seed, c.Generation.Seed))
	}
	return opts
}

func toVec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
