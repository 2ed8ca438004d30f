package systems

import (
	"github.com/automoto/orbitcam/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances looping marker tweens.
func UpdateTweens(ecs *ecs.ECS) {
	dt := float32(frameDelta())
	components.Tween.Each(ecs.World, func(entry *donburi.Entry) {
		seq := components.Tween.Get(entry)
		value, _, _ := seq.Update(dt)
		if entry.HasComponent(components.Marker) {
			components.Marker.Get(entry).Scale = float64(value)
		}
	})
}
