package orrery

// DigitsOutward draws the digits along a ray at the given angle, starting just outside a circle of the given radius centred at the
// cursor. A one is a tick across the ray, a zero is a dash along the ray. The cursor returns to its position afterwards, the heading is
// left at angle.
func DigitsOutward(c *Cursor, l Layout, radius, angle float64, ds []uint8) {
	x, y := c.Position()
	step := l.MarkStep * l.Scale

	c.PenUp()
	c.SetHeading(angle)
	if len(ds) == 0 {
		return
	}
	c.MoveForward(radius + l.MarkOffset*l.Scale)
	for _, d := range ds {
		if d != 0 {
			tick(c, l.TickLength*l.Scale)
			c.MoveForward(step)
			continue
		}
		c.PenDown()
		c.MoveForward(step)
		c.PenUp()
		c.MoveForward(step)
	}
	c.Teleport(x, y)
}

// DigitsAround draws the digits around a circle just outside the given radius, centred at the cursor. The first digit is placed at
// angle-90 degrees on the circle and digits follow counter clockwise. A one is a tick across the circle, a zero is an arc along it, and
// every digit is followed by a spacer. The cursor ends at the centre but its heading is advanced past the last digit; callers must set
// the heading before drawing an unrelated sequence.
func DigitsAround(c *Cursor, l Layout, radius, angle float64, ds []uint8) {
	radius += l.RingOffset * l.Scale

	c.PenUp()
	c.SetHeading(angle)
	for _, d := range ds {
		if d != 0 {
			toRing(c, radius)
			tick(c, l.TickLength*l.Scale)
			fromRing(c, radius)
		} else {
			toRing(c, radius)
			c.PenDown()
			c.DrawArc(radius, l.ArcSteps)
			c.PenUp()
			fromRing(c, radius)
		}

		// spacer
		toRing(c, radius)
		c.DrawArc(radius, l.SpacerSteps)
		fromRing(c, radius)
	}
}

// tick draws a line of the given length perpendicular to the heading and centred on the cursor. Position, heading and pen (up) are
// unchanged afterwards.
func tick(c *Cursor, length float64) {
	c.PenUp()
	c.TurnRight(90.0)
	c.MoveForward(length / 2.0)
	c.TurnRight(180.0)
	c.PenDown()
	c.MoveForward(length)
	c.PenUp()
	c.TurnRight(180.0)
	c.MoveForward(length / 2.0)
	c.TurnLeft(90.0)
}

// toRing moves from a centre to the point of the circle that lies to the right of the heading, keeping the heading so that DrawArc
// follows the circle.
func toRing(c *Cursor, radius float64) {
	c.TurnRight(90.0)
	c.MoveForward(radius)
	c.TurnLeft(90.0)
}

// fromRing is the inverse of toRing.
func fromRing(c *Cursor, radius float64) {
	c.TurnLeft(90.0)
	c.MoveForward(radius)
	c.TurnRight(90.0)
}

// circle draws a full circle of the given radius centred at the cursor. Position and heading are unchanged afterwards, the pen is up.
func circle(c *Cursor, radius float64) {
	c.PenUp()
	toRing(c, radius)
	c.PenDown()
	c.DrawArc(radius, 1)
	c.PenUp()
	fromRing(c, radius)
}
