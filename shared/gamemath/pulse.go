package gamemath

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NewPulse returns an endlessly looping tween sequence that scales from 1 to
// peak and back over period seconds.
func NewPulse(peak, period float32) *gween.Sequence {
	half := period / 2
	seq := gween.NewSequence(
		gween.New(1, peak, half, ease.InOutSine),
		gween.New(peak, 1, half, ease.InOutSine),
	)
	seq.SetLoop(-1)
	return seq
}
