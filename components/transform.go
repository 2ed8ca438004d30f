package components

import (
	"github.com/automoto/orbitcam/shared/gamemath"
	"github.com/yohamta/donburi"
)

type TransformData struct {
	*gamemath.Transform
}

var Transform = donburi.NewComponentType[TransformData]()
