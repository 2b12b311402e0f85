package orrery

import "github.com/tdewolff/canvas"

// Draw draws the primary and then every secondary. The cursor is reset to the origin with a heading of zero before each body.
func Draw(s Sink, sys *System, l Layout) {
	c := NewCursor(s)

	reset := func() {
		c.PenUp()
		c.Teleport(l.OriginX, l.OriginY)
		c.SetHeading(0.0)
	}

	reset()
	DrawPrimary(c, l, sys.Primary)
	for _, b := range sys.Secondaries {
		reset()
		DrawSecondary(c, l, b)
	}
}

// Render resolves the layout of the system and draws it on a new canvas of the configured size, with the origin at the canvas centre.
func Render(sys *System, cfg Config) (*canvas.Canvas, Layout, error) {
	if err := sys.Validate(); err != nil {
		return nil, Layout{}, err
	}
	l, err := Resolve(sys, cfg)
	if err != nil {
		return nil, Layout{}, err
	}

	s := NewPathSink()
	Draw(s, sys, l)

	c := canvas.New(l.Width, l.Height)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(l.StrokeWidth)
	ctx.SetStrokeCapper(canvas.RoundCap)
	ctx.SetStrokeJoiner(canvas.RoundJoin)
	ctx.DrawPath(l.Width/2.0, l.Height/2.0, s.Path)
	return c, l, nil
}
