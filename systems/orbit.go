package systems

import (
	"github.com/automoto/orbitcam/components"
	cfg "github.com/automoto/orbitcam/config"
	"github.com/automoto/orbitcam/orbit"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// orbitActions maps orbit keys to input actions
var orbitActions = [orbit.KeyCount]cfg.ActionID{
	orbit.KeyYawPositive:   cfg.ActionOrbitRight,
	orbit.KeyYawNegative:   cfg.ActionOrbitLeft,
	orbit.KeyPitchPositive: cfg.ActionOrbitUp,
	orbit.KeyPitchNegative: cfg.ActionOrbitDown,
}

// orbitInput adapts the buffered action state to orbit.Input.
type orbitInput struct {
	input *components.InputData
}

func (o orbitInput) Pressed(k orbit.Key) bool {
	return GetAction(o.input, orbitActions[k]).JustPressed
}

func (o orbitInput) Released(k orbit.Key) bool {
	return GetAction(o.input, orbitActions[k]).JustReleased
}

func (o orbitInput) Scroll() float64 {
	return o.input.Scroll
}

// frameDelta returns the seconds covered by one update tick.
var frameDelta = func() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdateOrbit advances every orbit controller by one frame.
// Must run AFTER UpdateInput.
func UpdateOrbit(ecs *ecs.ECS) {
	input := orbitInput{input: getOrCreateInput(ecs)}
	dt := frameDelta()

	components.Orbit.Each(ecs.World, func(entry *donburi.Entry) {
		components.Orbit.Get(entry).Advance(dt, input)
	})
}
