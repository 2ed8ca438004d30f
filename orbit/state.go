package orbit

// Direction is the commanded rotation direction of one axis.
type Direction int

const (
	Negative Direction = -1
	Neutral  Direction = 0
	Positive Direction = 1
)

// target returns the velocity a ramp toward this direction ends at.
func (d Direction) target(maxSpeed float64) float64 {
	switch d {
	case Positive:
		return maxSpeed
	case Negative:
		return -maxSpeed
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return "0"
	}
}

// Axis selects one of the two rotation axes.
type Axis int

const (
	Yaw Axis = iota
	Pitch
)

func (a Axis) String() string {
	if a == Pitch {
		return "pitch"
	}
	return "yaw"
}

// AxisState is the ramp state of a single axis.
type AxisState struct {
	Direction    Direction
	Velocity     float64 // degrees per second applied this frame
	RampStart    float64 // velocity captured when the direction last changed
	RampTarget   float64 // 0, +max or -max
	RampProgress float64 // interpolation parameter, not clamped
	Changed      bool    // direction changed this frame
}

func (s *AxisState) setDirection(d Direction) {
	s.Direction = d
	s.Changed = true
}

// Idle reports whether the axis is neither commanded nor still moving.
func (s AxisState) Idle() bool {
	return s.Direction == Neutral && approximately(0, s.Velocity)
}

// State is the full per-controller state carried across frames.
type State struct {
	Yaw   AxisState
	Pitch AxisState
}

// Axis returns a pointer to the state of the given axis.
func (s *State) Axis(a Axis) *AxisState {
	if a == Pitch {
		return &s.Pitch
	}
	return &s.Yaw
}
