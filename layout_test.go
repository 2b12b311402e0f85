package orrery

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

// unitConfig has no world scaling, no diameter multipliers and no margin, on a square canvas of 100.
func unitConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 100.0
	cfg.Height = 100.0
	cfg.WorldScale = 1.0
	cfg.PrimaryScale = 1.0
	cfg.SecondaryScale = 1.0
	cfg.Margin = 0.0
	return cfg
}

func TestResolve(t *testing.T) {
	sys := &System{
		Primary: Body{Diameter: 10.0},
		Secondaries: []Body{
			{Diameter: 5.0, Orbit: 20.0, Direction: Prograde},
			{Diameter: 5.0, Orbit: 10.0, Direction: Retrograde},
		},
	}
	l, err := Resolve(sys, unitConfig())
	test.Error(t, err)
	test.Float(t, l.Scale, 2.5) // horizontal extent from -15 to 25
	test.Float(t, l.OriginX, -12.5)
	test.Float(t, l.OriginY, 0.0)

	test.Float(t, l.PrimaryRadius(sys.Primary), 12.5)
	test.Float(t, l.SecondaryRadius(sys.Secondaries[0]), 6.25)
	test.Float(t, l.OrbitLength(sys.Secondaries[0]), 50.0)
}

func TestResolveVertical(t *testing.T) {
	sys := &System{
		Primary:     Body{Diameter: 40.0},
		Secondaries: []Body{{Diameter: 0.0, Orbit: 10.0, Direction: Retrograde}},
	}
	l, err := Resolve(sys, unitConfig())
	test.Error(t, err)
	test.Float(t, l.Scale, 2.5) // height of 100 over a diameter of 40
	test.Float(t, l.OriginX, 12.5)
}

func TestResolvePrimaryOnly(t *testing.T) {
	l, err := Resolve(&System{Primary: Body{Diameter: 100.0}}, DefaultConfig())
	test.Error(t, err)
	test.Float(t, l.Scale, math.Min(1920.0/16.0, 1024.0/(100.0*2.0*5e-8)))
	test.Float(t, l.OriginX, 0.0)
}

func TestResolveDegenerate(t *testing.T) {
	_, err := Resolve(&System{Primary: Body{Diameter: 0.0}}, DefaultConfig())
	test.That(t, errors.Is(err, ErrDegenerateLayout), err)

	// zero extents without margin
	cfg := unitConfig()
	sys := &System{
		Primary:     Body{Diameter: 0.0},
		Secondaries: []Body{{Direction: Prograde}},
	}
	_, err = Resolve(sys, cfg)
	test.That(t, errors.Is(err, ErrDegenerateLayout), err)

	cfg = DefaultConfig()
	cfg.Width = 0.0
	_, err = Resolve(&System{Primary: Body{Diameter: 1.0}}, cfg)
	test.That(t, errors.Is(err, ErrDegenerateLayout), err)
}

func TestConfigValidate(t *testing.T) {
	test.Error(t, DefaultConfig().Validate())

	var tts = []func(*Config){
		func(cfg *Config) { cfg.Height = -1.0 },
		func(cfg *Config) { cfg.WorldScale = math.Inf(1) },
		func(cfg *Config) { cfg.PrimaryScale = math.NaN() },
		func(cfg *Config) { cfg.Margin = -1.0 },
		func(cfg *Config) { cfg.SecondaryRing = math.NaN() },
		func(cfg *Config) { cfg.MarkStep = 0.0 },
		func(cfg *Config) { cfg.ArcSteps = 0 },
		func(cfg *Config) { cfg.SpacerSteps = -4 },
		func(cfg *Config) { cfg.StrokeWidth = 0.0 },
	}
	for i, tt := range tts {
		cfg := DefaultConfig()
		tt(&cfg)
		err := cfg.Validate()
		test.That(t, errors.Is(err, ErrDegenerateLayout), i, err)
	}
}

func TestResolveFits(t *testing.T) {
	systems := []*System{
		{Primary: Body{Diameter: 139820000.0}, Secondaries: []Body{
			{Diameter: 3643000.0, Orbit: 421800000.0, Direction: Prograde},
			{Diameter: 3121600.0, Orbit: 671100000.0, Direction: Retrograde},
			{Diameter: 5262400.0, Orbit: 1070400000.0, Direction: Prograde},
			{Diameter: 4820600.0, Orbit: 1882700000.0, Direction: Retrograde},
		}},
		{Primary: Body{Diameter: 100.0}, Secondaries: []Body{
			{Diameter: 5.0, Orbit: 20.0, Direction: Prograde},
		}},
		{Primary: Body{Diameter: 1e6}, Secondaries: []Body{
			{Diameter: 1e5, Orbit: 5e9, Direction: Retrograde},
			{Diameter: 1e5, Orbit: 1e9, Direction: Retrograde},
		}},
		{Primary: Body{Diameter: 0.0}, Secondaries: []Body{
			{Diameter: 1e7, Orbit: 3e10, Direction: Prograde},
			{Diameter: 1e7, Orbit: 2e8, Direction: Retrograde},
		}},
	}

	cfg := DefaultConfig()
	for i, sys := range systems {
		l, err := Resolve(sys, cfg)
		test.Error(t, err)
		test.That(t, 0.0 < l.Scale && !math.IsInf(l.Scale, 0), i, l.Scale)

		for _, b := range sys.Secondaries {
			near := float64(b.Direction) * b.Orbit * cfg.WorldScale * l.Scale
			far := float64(b.Direction) * (b.Orbit + b.Diameter*cfg.SecondaryScale) * cfg.WorldScale * l.Scale
			for _, x := range []float64{near, far} {
				x += l.OriginX
				test.That(t, -cfg.Width/2.0 <= x && x <= cfg.Width/2.0, i, x)
			}
		}
		test.That(t, 2.0*l.PrimaryRadius(sys.Primary) <= cfg.Height+1e-9, i)
	}
}
