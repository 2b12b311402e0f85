package orrery

import "math"

// Cursor is a drawing state machine with a position, a heading and a pen. A heading of zero points along the positive x-axis and
// increases counter clockwise. Movements with the pen down are emitted to the sink, other movements only break the current subpath.
type Cursor struct {
	sink    Sink
	x, y    float64
	heading float64
	down    bool
	broken  bool // next drawing command must start with a MoveTo
}

// NewCursor returns a cursor at the origin heading along the x-axis with the pen up.
func NewCursor(sink Sink) *Cursor {
	return &Cursor{
		sink:   sink,
		broken: true,
	}
}

// Position returns the current position.
func (c *Cursor) Position() (float64, float64) {
	return c.x, c.y
}

// Heading returns the current heading in degrees in [0,360).
func (c *Cursor) Heading() float64 {
	return c.heading
}

// IsDown returns true if the pen is down.
func (c *Cursor) IsDown() bool {
	return c.down
}

// PenUp stops drawing on subsequent moves.
func (c *Cursor) PenUp() {
	c.down = false
	c.broken = true
}

// PenDown starts drawing on subsequent moves.
func (c *Cursor) PenDown() {
	c.down = true
}

// SetHeading sets the absolute heading.
func (c *Cursor) SetHeading(deg float64) {
	c.heading = normalizeAngle(deg)
}

// TurnLeft rotates the heading counter clockwise by deg degrees.
func (c *Cursor) TurnLeft(deg float64) {
	c.heading = normalizeAngle(c.heading + deg)
}

// TurnRight rotates the heading clockwise by deg degrees.
func (c *Cursor) TurnRight(deg float64) {
	c.heading = normalizeAngle(c.heading - deg)
}

// Teleport moves the cursor to (x,y) without drawing, regardless of the pen.
func (c *Cursor) Teleport(x, y float64) {
	c.x, c.y = x, y
	c.broken = true
}

// MoveForward moves along the heading, a negative distance moves backwards.
func (c *Cursor) MoveForward(d float64) {
	sin, cos := math.Sincos(c.heading * math.Pi / 180.0)
	c.moveTo(c.x+d*cos, c.y+d*sin)
}

// MoveBack moves against the heading.
func (c *Cursor) MoveBack(d float64) {
	c.MoveForward(-d)
}

// DrawArc moves along a circular arc of 360/steps degrees. The centre lies radius to the left of the heading, so that the arc starts at
// the current position tangent to the heading. The heading turns along with the arc. A steps value below one draws a full circle.
func (c *Cursor) DrawArc(radius float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	extent := 360.0 / float64(steps)

	// position and centre relative to each other
	sin, cos := math.Sincos((c.heading + 90.0) * math.Pi / 180.0)
	cx, cy := c.x+radius*cos, c.y+radius*sin
	theta0 := c.heading - 90.0
	theta1 := theta0 + extent

	if c.down {
		c.start()
		c.sink.Arc(cx, cy, radius, theta0, theta1)
	} else {
		c.broken = true
	}
	c.x, c.y = arcPos(cx, cy, radius, theta1)
	c.heading = normalizeAngle(c.heading + extent)
}

func (c *Cursor) moveTo(x, y float64) {
	if c.down {
		c.start()
		c.sink.LineTo(x, y)
	} else {
		c.broken = true
	}
	c.x, c.y = x, y
}

func (c *Cursor) start() {
	if c.broken {
		c.sink.MoveTo(c.x, c.y)
		c.broken = false
	}
}

// normalizeAngle maps an angle in degrees to [0,360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0.0 {
		deg += 360.0
	}
	if deg == 360.0 { // rounding of tiny negative angles
		deg = 0.0
	}
	return deg
}
