package orrery

import (
	"fmt"
	"math"
)

// Config holds the layout constants of a diagram. Lengths are in canvas units unless noted otherwise.
type Config struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	WorldScale     float64 `toml:"world_scale"`     // distance units to canvas units
	PrimaryScale   float64 `toml:"primary_scale"`   // multiplier of the primary's diameter
	SecondaryScale float64 `toml:"secondary_scale"` // multiplier of a secondary's diameter
	Margin         float64 `toml:"margin"`          // added to the horizontal extent before fitting
	SecondaryRing  float64 `toml:"secondary_ring"`  // fixed radius of a secondary's orbital distance ring

	// mark geometry, in units of the resolved scale factor
	MarkOffset float64 `toml:"mark_offset"`
	MarkStep   float64 `toml:"mark_step"`
	TickLength float64 `toml:"tick_length"`
	RingOffset float64 `toml:"ring_offset"`

	ArcSteps    int `toml:"arc_steps"`    // arc drawn for a zero digit spans 360/ArcSteps degrees
	SpacerSteps int `toml:"spacer_steps"` // gap after every digit spans 360/SpacerSteps degrees

	StrokeWidth float64 `toml:"stroke_width"`
}

// DefaultConfig returns the layout constants for a 1920x1024 diagram of a gas giant and its moons, with distances in meters.
func DefaultConfig() Config {
	return Config{
		Width:          1920.0,
		Height:         1024.0,
		WorldScale:     5e-8,
		PrimaryScale:   2.0,
		SecondaryScale: 10.0,
		Margin:         16.0,
		SecondaryRing:  40.0,
		MarkOffset:     1.0,
		MarkStep:       0.25,
		TickLength:     0.5,
		RingOffset:     1.5,
		ArcSteps:       4,
		SpacerSteps:    4,
		StrokeWidth:    1.0,
	}
}

// Validate returns an error wrapping ErrDegenerateLayout if a size or scale is not positive and finite.
func (cfg Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"width", cfg.Width},
		{"height", cfg.Height},
		{"world_scale", cfg.WorldScale},
		{"primary_scale", cfg.PrimaryScale},
		{"secondary_scale", cfg.SecondaryScale},
		{"mark_step", cfg.MarkStep},
		{"tick_length", cfg.TickLength},
		{"stroke_width", cfg.StrokeWidth},
	}
	for _, f := range fields {
		if !isPositive(f.v) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrDegenerateLayout, f.name, f.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"margin", cfg.Margin},
		{"secondary_ring", cfg.SecondaryRing},
		{"mark_offset", cfg.MarkOffset},
		{"ring_offset", cfg.RingOffset},
	}
	for _, f := range nonNegative {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0.0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrDegenerateLayout, f.name, f.v)
		}
	}

	if cfg.ArcSteps < 1 {
		return fmt.Errorf("%w: arc_steps must be at least 1, got %d", ErrDegenerateLayout, cfg.ArcSteps)
	} else if cfg.SpacerSteps < 1 {
		return fmt.Errorf("%w: spacer_steps must be at least 1, got %d", ErrDegenerateLayout, cfg.SpacerSteps)
	}
	return nil
}

func isPositive(f float64) bool {
	return 0.0 < f && !math.IsInf(f, 0)
}

// Layout is the resolved, immutable geometry of a diagram. It is computed once before drawing begins.
type Layout struct {
	Config
	Scale            float64
	OriginX, OriginY float64
}

// Resolve computes the global scale factor and the origin so that the primary and all secondaries fit the canvas.
func Resolve(sys *System, cfg Config) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}

	// directed horizontal extents, seeded at zero so that a lone primary has no extent
	xmin, xmax := 0.0, 0.0
	for _, b := range sys.Secondaries {
		x := float64(b.Direction) * (b.Orbit + b.Diameter*cfg.SecondaryScale) * cfg.WorldScale
		xmin = math.Min(xmin, x)
		xmax = math.Max(xmax, x)
	}
	y := sys.Primary.Diameter * cfg.PrimaryScale * cfg.WorldScale / 2.0
	if y == 0.0 && len(sys.Secondaries) == 0 {
		return Layout{}, fmt.Errorf("%w: zero-sized primary without secondaries", ErrDegenerateLayout)
	}

	scale := cfg.Width / (xmax - xmin + cfg.Margin)
	if 0.0 < y {
		scale = math.Min(scale, cfg.Height/(2.0*y))
	}
	if !isPositive(scale) || math.IsNaN(scale) {
		return Layout{}, fmt.Errorf("%w: scale factor %v", ErrDegenerateLayout, scale)
	}

	return Layout{
		Config:  cfg,
		Scale:   scale,
		OriginX: -(xmax + xmin) * scale / 2.0,
		OriginY: 0.0,
	}, nil
}

// PrimaryRadius returns the radius of the primary's circle in canvas units.
func (l Layout) PrimaryRadius(b Body) float64 {
	return l.Scale * l.PrimaryScale * l.WorldScale * b.Diameter / 2.0
}

// SecondaryRadius returns the radius of a secondary's circle in canvas units.
func (l Layout) SecondaryRadius(b Body) float64 {
	return l.Scale * l.SecondaryScale * l.WorldScale * b.Diameter / 2.0
}

// OrbitLength returns the distance between a secondary's centre and the primary's centre in canvas units.
func (l Layout) OrbitLength(b Body) float64 {
	return l.Scale * l.WorldScale * b.Orbit
}
