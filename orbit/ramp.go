package orbit

import "github.com/go-gl/mathgl/mgl64"

// lerp interpolates from start to end with t clamped to [0, 1].
func lerp(start, end, t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	return start + (end-start)*t
}

// rampDone reports whether the velocity needs no further interpolation.
//
// An active direction is compared against +MaxAngularSpeed whatever its
// sign, so a negative ramp never reports done and keeps re-interpolating to
// the clamped end value while RampProgress grows.
func (c *Controller) rampDone(s *AxisState) bool {
	if s.Direction != Neutral {
		return approximately(c.cfg.MaxAngularSpeed, s.Velocity)
	}
	return approximately(0, s.Velocity)
}

// updateRamp advances the velocity ramp of one axis and reports whether the
// axis is active this frame.
func (c *Controller) updateRamp(a Axis, dt float64) bool {
	s := c.state.Axis(a)
	if s.Idle() {
		return false
	}

	if s.Changed {
		s.RampStart = s.Velocity
		s.RampTarget = s.Direction.target(c.cfg.MaxAngularSpeed)
		s.RampProgress = 0
	}

	if !c.rampDone(s) {
		s.Velocity = lerp(s.RampStart, s.RampTarget, s.RampProgress)
		s.RampProgress += c.cfg.AngularAcceleration * dt
	}
	return true
}

// rotate ramps one axis and turns the viewpoint around the pivot by the
// resulting angle. Yaw turns about the viewpoint's up axis with the sign
// flipped, pitch about its right axis unflipped.
func (c *Controller) rotate(a Axis, dt float64) {
	if !c.updateRamp(a, dt) {
		return
	}

	s := c.state.Axis(a)
	pivot := c.pivot.Position()
	switch a {
	case Yaw:
		c.view.RotateAround(pivot, c.view.Up(), -s.Velocity*dt)
	case Pitch:
		c.view.RotateAround(pivot, c.view.Right(), s.Velocity*dt)
	}
}
