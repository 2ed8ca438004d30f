package factory

import (
	"github.com/automoto/orbitcam/archetypes"
	"github.com/automoto/orbitcam/components"
	cfg "github.com/automoto/orbitcam/config"
	"github.com/automoto/orbitcam/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePivot spawns the point the viewpoint orbits, drawn as a pulsing cube.
func CreatePivot(ecs *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	pivot := archetypes.Pivot.Spawn(ecs)
	components.Transform.SetValue(pivot, components.TransformData{
		Transform: gamemath.NewTransform(pos),
	})
	components.Marker.SetValue(pivot, components.MarkerData{
		Size:  cfg.Scene.PivotSize,
		Scale: 1,
		Color: cfg.UI.PivotColor,
	})

	// The marker breathes using a *gween.Sequence, restarted by UpdateTweens.
	components.Tween.Set(pivot, gamemath.NewPulse(cfg.Scene.PulsePeak, cfg.Scene.PulsePeriod))

	return pivot
}
