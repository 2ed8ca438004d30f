package orbit

// updateDirection turns the key edges of one axis into a commanded
// direction. The checks are independent and run in a fixed order, so a press
// in the same frame overrides a release-to-neutral, and the negative key
// overrides the positive one.
func (c *Controller) updateDirection(a Axis, in Input) {
	s := c.state.Axis(a)
	pos, neg := keyPair(a)

	// Letting go of a key without taking over the opposite one
	if (in.Released(pos) && !in.Pressed(neg)) || (in.Released(neg) && !in.Pressed(pos)) {
		s.setDirection(Neutral)
	}
	if in.Pressed(pos) && s.Direction != Positive {
		s.setDirection(Positive)
	}
	if in.Pressed(neg) && s.Direction != Negative {
		s.setDirection(Negative)
	}
}
