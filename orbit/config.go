package orbit

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositiveSpeed = errors.New("max angular speed must be positive")
	ErrNonPositiveAccel = errors.New("angular acceleration must be positive")
	ErrNonPositiveStep  = errors.New("zoom step must be positive")
	ErrDistanceRange    = errors.New("invalid distance range")
)

// Config holds the tuning values of an orbit controller.
type Config struct {
	MaxAngularSpeed     float64 // degrees per second at full speed
	AngularAcceleration float64 // ramp progress gained per second
	DefaultDistance     float64 // distance to the pivot after Initialize
	MinDistance         float64 // zoom-in gate
	MaxDistance         float64 // zoom-out gate
	ZoomStep            float64 // distance moved per scroll frame
}

// Validate reports the first setting that would make the controller misbehave.
func (c Config) Validate() error {
	if c.MaxAngularSpeed <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositiveSpeed, c.MaxAngularSpeed)
	}
	if c.AngularAcceleration <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositiveAccel, c.AngularAcceleration)
	}
	if c.ZoomStep <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositiveStep, c.ZoomStep)
	}
	if c.MinDistance < 0 || c.MinDistance > c.MaxDistance {
		return fmt.Errorf("%w: min %g, max %g", ErrDistanceRange, c.MinDistance, c.MaxDistance)
	}
	if c.DefaultDistance < c.MinDistance || c.DefaultDistance > c.MaxDistance {
		return fmt.Errorf("%w: default %g outside [%g, %g]", ErrDistanceRange,
			c.DefaultDistance, c.MinDistance, c.MaxDistance)
	}
	return nil
}
