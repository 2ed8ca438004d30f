package orbit

// Key is one of the four logical orbit keys.
type Key int

const (
	KeyYawPositive Key = iota
	KeyYawNegative
	KeyPitchPositive
	KeyPitchNegative
	KeyCount // Must be last - used for array sizing
)

// Input is the per-frame input snapshot the controller reads.
type Input interface {
	// Pressed reports whether the key went down this frame.
	Pressed(k Key) bool
	// Released reports whether the key went up this frame.
	Released(k Key) bool
	// Scroll returns the vertical wheel delta of this frame.
	Scroll() float64
}

// Snapshot is a plain Input value.
type Snapshot struct {
	Down        [KeyCount]bool
	Up          [KeyCount]bool
	ScrollDelta float64
}

func (s Snapshot) Pressed(k Key) bool  { return s.Down[k] }
func (s Snapshot) Released(k Key) bool { return s.Up[k] }
func (s Snapshot) Scroll() float64     { return s.ScrollDelta }

// keyPair maps an axis to its positive and negative key.
func keyPair(a Axis) (pos, neg Key) {
	if a == Pitch {
		return KeyPitchPositive, KeyPitchNegative
	}
	return KeyYawPositive, KeyYawNegative
}
