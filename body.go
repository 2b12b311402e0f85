package orrery

// DrawPrimary draws the primary centred at the cursor with its rotation period and orbital distance around it and its orbital period
// along a ray to the left.
func DrawPrimary(c *Cursor, l Layout, b Body) {
	radius := l.PrimaryRadius(b)
	circle(c, radius)
	DigitsAround(c, l, radius, -45.0, Digits(b.Rotation))
	DigitsAround(c, l, radius, 90.0, Digits(b.OrbitThousands()))
	DigitsOutward(c, l, radius, 180.0, Digits(b.Period))
}

// DrawSecondary draws a secondary on its side of the primary, which must be centred at the cursor with a heading of zero. The orbital
// period points towards the primary, in reverse digit order for retrograde secondaries. The orbital distance is drawn on a ring of fixed
// radius that does not depend on the size of the secondary.
func DrawSecondary(c *Cursor, l Layout, b Body) {
	c.PenUp()
	if b.Direction == Retrograde {
		c.MoveBack(l.OrbitLength(b))
	} else {
		c.MoveForward(l.OrbitLength(b))
	}

	radius := l.SecondaryRadius(b)
	circle(c, radius)

	angle, period := periodDigits(b)
	DigitsOutward(c, l, radius, angle, period)
	DigitsAround(c, l, l.SecondaryRing, angle-90.0, Digits(b.OrbitThousands()))
}

// periodDigits returns the direction of the ray pointing from a secondary towards the primary, and the digits of its orbital period.
func periodDigits(b Body) (float64, []uint8) {
	if b.Direction == Retrograde {
		return 0.0, Reversed(Digits(b.Period))
	}
	return 180.0, Digits(b.Period)
}
