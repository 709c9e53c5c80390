package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Faultbox/icosphere/internal/config"
	"github.com/Faultbox/icosphere/internal/logger"
	"github.com/Faultbox/icosphere/pkg/icosphere"
)

// radiusTolerance is the largest relative radius error check accepts.
const radiusTolerance = 1e-4

var errCheckFailed = errors.New("mesh check failed")

// build creates and populates a sphere from cfg.
func build(cfg *config.Config) (*icosphere.Sphere, time.Duration, error) {
	s := icosphere.New(cfg.SphereOptions(logger.Named("icosphere")))

	start := time.Now()
	if err := s.Generate(); err != nil {
		return nil, 0, err
	}
	return s, time.Since(start), nil
}

func cmdInfo(w io.Writer, cfg *config.Config) error {
	s, elapsed, err := build(cfg)
	if err != nil {
		return err
	}

	faces := s.Faces()
	upper := icosphere.CountColor(faces, s.Color())
	b := s.Bounds()

	fmt.Fprintf(w, "Center:       %v\n", s.Position())
	fmt.Fprintf(w, "Radius:       %g\n", s.Radius())
	fmt.Fprintf(w, "Depth:        %d\n", s.Depth())
	fmt.Fprintf(w, "Faces:        %d\n", len(faces))
	fmt.Fprintf(w, "Color:        %v (%d faces)\n", s.Color(), upper)
	fmt.Fprintf(w, "Shaded color: %v (%d faces)\n", s.ShadedColor(), len(faces)-upper)
	fmt.Fprintf(w, "Bounds:       %v .. %v\n", b.Min, b.Max)
	if !cfg.Placement.IsIdentity() {
		pb := icosphere.ComputeBounds(s.Transformed(cfg.PlacementMatrix()))
		fmt.Fprintf(w, "Placed:       %v .. %v (rotate %v, scale %g)\n",
			pb.Min, pb.Max, cfg.Placement.Rotate, cfg.Placement.Scale)
	}
	fmt.Fprintf(w, "Radius error: %.3g\n", icosphere.MaxRadiusError(faces, s.Position(), s.Radius()))
	fmt.Fprintf(w, "Generated in: %v\n", elapsed.Round(time.Microsecond))
	return nil
}

func cmdCheck(w io.Writer, cfg *config.Config) error {
	s, _, err := build(cfg)
	if err != nil {
		return err
	}
	faces := s.Faces()

	failed := 0
	report := func(name string, err error) {
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %-12s %v\n", name, err)
			return
		}
		fmt.Fprintf(w, "ok    %s\n", name)
	}

	var countErr error
	if want := icosphere.FaceCount(s.Depth()); len(faces) != want {
		countErr = fmt.Errorf("got %d faces, want %d", len(faces), want)
	}
	report("face count", countErr)

	report("closed", icosphere.CheckClosed(faces))

	var radiusErr error
	if e := icosphere.MaxRadiusError(faces, s.Position(), s.Radius()); e > radiusTolerance {
		radiusErr = fmt.Errorf("max relative error %.3g exceeds %g", e, radiusTolerance)
	}
	report("radius", radiusErr)

	var colorErr error
	upper := icosphere.CountColor(faces, s.Color())
	lower := icosphere.CountColor(faces, s.ShadedColor())
	if s.Color() != s.ShadedColor() && upper+lower != len(faces) {
		colorErr = fmt.Errorf("%d faces carry neither the base nor the shaded color", len(faces)-upper-lower)
	}
	report("colors", colorErr)

	if failed > 0 {
		return fmt.Errorf("%w: %d of 4 checks", errCheckFailed, failed)
	}
	return nil
}

func cmdConfig(w io.Writer, cfg *config.Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func cmdSave(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Saved config to %s\n", config.DefaultPath())
		return nil
	}

	if err := cfg.SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(w, "Saved config to %s\n", args[0])
	return nil
}
