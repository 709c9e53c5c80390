package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// vec3Flag parses "x,y,z" and remembers whether it was given.
type vec3Flag struct {
	v   [3]float32
	set bool
}

func (f *vec3Flag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.v[0], f.v[1], f.v[2])
}

func (f *vec3Flag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float32
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = float32(n)
	}
	f.v, f.set = v, true
	return nil
}

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("log-file", "", "Write logs to this file as well")
	flagRadius  = flag.Float64("radius", 0, "Sphere radius")
	flagDepth   = flag.Int("depth", -1, "Subdivision depth")
	flagWorkers = flag.Int("workers", 0, "Worker pool size (1 = sequential)")
	flagShade   = flag.Float64("shade", -1, "Shade difference for the lower hemisphere")
	flagSeed    = flag.Uint64("seed", 0, "Seed for the random base color")
	flagScale   = flag.Float64("scale", 0, "Placement scale about the sphere center")
	flagCenter  = &vec3Flag{}
	flagColor   = &vec3Flag{}
	flagRotate  = &vec3Flag{}
)

func init() {
	flag.Var(flagCenter, "center", "Sphere center as x,y,z")
	flag.Var(flagColor, "color", "Base color as r,g,b in [0,1]")
	flag.Var(flagRotate, "rotate", "Placement rotation in degrees as x,y,z")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagRadius > 0 {
		cfg.Sphere.Radius = float32(*flagRadius)
	}
	if *flagDepth >= 0 {
		cfg.Generation.Depth = *flagDepth
	}
	if *flagWorkers > 0 {
		cfg.Generation.Workers = *flagWorkers
	}
	if *flagShade >= 0 {
		cfg.Sphere.ShadeDifference = float32(*flagShade)
		// An explicit shaded color would otherwise win over the new difference.
		cfg.Sphere.ShadedColor = nil
	}
	if *flagSeed != 0 {
		cfg.Generation.Seed = *flagSeed
	}
	if *flagScale > 0 {
		cfg.Placement.Scale = float32(*flagScale)
	}
	if flagRotate.set {
		cfg.Placement.Rotate = flagRotate.v
	}
	if flagCenter.set {
		cfg.Sphere.Center = flagCenter.v
	}
	if flagColor.set {
		c := flagColor.v
		cfg.Sphere.Color = &c
		// A new base color invalidates a configured shaded color.
		cfg.Sphere.ShadedColor = nil
	}
}
