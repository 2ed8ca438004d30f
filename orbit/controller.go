package orbit

// Behavior is the lifecycle a host drives: Initialize once before the first
// frame, then Advance once per frame.
type Behavior interface {
	Initialize()
	Advance(dt float64, in Input)
}

var _ Behavior = (*Controller)(nil)

// Controller orbits a viewpoint around a pivot from keyboard and wheel input.
type Controller struct {
	cfg   Config
	pivot Pivot
	view  Transform // nil when no viewpoint is configured
	state State
}

// NewController creates a controller. A nil view or pivot interface leaves
// the controller inert. A typed nil pointer inside the interface is not
// detected, so callers convert those to a nil interface first.
func NewController(cfg Config, pivot Pivot, view Transform) *Controller {
	return &Controller{
		cfg:   cfg,
		pivot: pivot,
		view:  view,
	}
}

func (c *Controller) configured() bool {
	return c.view != nil && c.pivot != nil
}

// Config returns the tuning values the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a copy of the current ramp state.
func (c *Controller) State() State {
	return c.state
}

// Distance returns the current viewpoint distance to the pivot, or 0 when
// the controller is not configured.
func (c *Controller) Distance() float64 {
	if !c.configured() {
		return 0
	}
	return distance(c.view.Position(), c.pivot.Position())
}

// Initialize faces the viewpoint toward the pivot and moves it along its
// forward axis to the default distance.
func (c *Controller) Initialize() {
	if !c.configured() {
		return
	}

	target := c.pivot.Position()
	c.view.LookAt(target)

	d := distance(c.view.Position(), target)
	if d != c.cfg.DefaultDistance {
		// Forward is a unit vector, so this lands exactly on the default.
		c.view.SetPosition(c.view.Position().Add(c.view.Forward().Mul(d - c.cfg.DefaultDistance)))
	}
}

// Advance runs one frame: direction edges, velocity ramps and rotation, then
// zoom. dt is the elapsed time since the previous frame in seconds.
func (c *Controller) Advance(dt float64, in Input) {
	if !c.configured() {
		return
	}

	c.updateDirection(Yaw, in)
	c.updateDirection(Pitch, in)

	c.rotate(Yaw, dt)
	c.rotate(Pitch, dt)

	c.zoom(in)

	c.state.Yaw.Changed = false
	c.state.Pitch.Changed = false
}
