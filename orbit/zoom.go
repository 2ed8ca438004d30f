package orbit

// zoom moves the viewpoint along its forward axis by one step per scrolled
// frame. The distance gate is checked before the move, so the last step can
// land up to ZoomStep past a bound.
func (c *Controller) zoom(in Input) {
	scroll := in.Scroll()
	if scroll == 0 {
		return
	}

	pos := c.view.Position()
	d := distance(pos, c.pivot.Position())
	step := c.view.Forward().Mul(c.cfg.ZoomStep)

	switch {
	case scroll > 0:
		if d >= c.cfg.MinDistance {
			c.view.SetPosition(pos.Add(step))
		}
	case scroll < 0:
		if d <= c.cfg.MaxDistance {
			c.view.SetPosition(pos.Sub(step))
		}
	}
}
