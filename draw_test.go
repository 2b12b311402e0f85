package orrery

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func exampleSystem() *System {
	return &System{
		Primary: Body{Diameter: 100.0, Rotation: 10, Orbit: 5000.0, Period: 3},
		Secondaries: []Body{
			{Diameter: 5.0, Orbit: 20.0, Period: 7, Direction: Prograde},
		},
	}
}

func TestDraw(t *testing.T) {
	sys := exampleSystem()
	l, err := Resolve(sys, DefaultConfig())
	test.Error(t, err)

	rec := &Recorder{}
	Draw(rec, sys, l)
	test.That(t, 0 < len(rec.Commands))
	test.That(t, len(rec.Commands) < 1000)

	// primary circle, rotation 1010, orbit 101, period 11, secondary circle, period 111, orbit 0
	test.T(t, rec.Count(ArcOp), 1+2+1+1+1)
	test.T(t, rec.Count(LineToOp), 2+2+2+3)

	b, ok := rec.Bounds()
	test.That(t, ok)
	test.That(t, -l.Width/2.0 <= b.X0 && b.X1 <= l.Width/2.0, b)
	test.That(t, -l.Height/2.0 <= b.Y0 && b.Y1 <= l.Height/2.0, b)
}

func TestDrawResetsCursor(t *testing.T) {
	sys := exampleSystem()
	sys.Secondaries = append(sys.Secondaries, Body{Diameter: 5.0, Orbit: 20.0, Period: 7, Direction: Retrograde})
	l, err := Resolve(sys, DefaultConfig())
	test.Error(t, err)

	rec := &Recorder{}
	Draw(rec, sys, l)

	// the secondary circles are centred on either side of the origin, at the same distance
	circles := []Command{}
	for _, cmd := range rec.Commands {
		if cmd.Op == ArcOp && cmd.Theta1-cmd.Theta0 == 360.0 {
			circles = append(circles, cmd)
		}
	}
	test.T(t, len(circles), 3)
	test.Float(t, circles[0].CX, l.OriginX)
	test.Float(t, circles[1].CX-l.OriginX, l.OrbitLength(sys.Secondaries[0]))
	test.Float(t, circles[2].CX-l.OriginX, -l.OrbitLength(sys.Secondaries[1]))
	for _, circle := range circles {
		test.Float(t, circle.CY, l.OriginY)
	}
}

func TestRender(t *testing.T) {
	c, l, err := Render(exampleSystem(), DefaultConfig())
	test.Error(t, err)
	test.Float(t, c.W, 1920.0)
	test.Float(t, c.H, 1024.0)
	test.That(t, 0.0 < l.Scale)
	test.That(t, !c.Empty())
}

func TestRenderErrors(t *testing.T) {
	_, _, err := Render(&System{Primary: Body{Diameter: 0.0}}, DefaultConfig())
	test.That(t, errors.Is(err, ErrDegenerateLayout), err)

	sys := exampleSystem()
	sys.Secondaries[0].Direction = 0
	_, _, err = Render(sys, DefaultConfig())
	test.That(t, errors.Is(err, ErrInvalidRecord), err)
}
