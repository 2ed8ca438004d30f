package factory

import (
	"github.com/automoto/orbitcam/archetypes"
	"github.com/automoto/orbitcam/components"
	"github.com/automoto/orbitcam/orbit"
	"github.com/automoto/orbitcam/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var _ orbit.Transform = (*gamemath.Transform)(nil)

// CreateViewpoint spawns the orbiting camera at pos and runs the controller's
// one-time setup so it faces the pivot at the default distance.
func CreateViewpoint(ecs *ecs.ECS, pivot *donburi.Entry, pos mgl64.Vec3, settings orbit.Config) *donburi.Entry {
	view := archetypes.Viewpoint.Spawn(ecs)
	t := gamemath.NewTransform(pos)
	components.Transform.SetValue(view, components.TransformData{Transform: t})

	var pivotPos orbit.Pivot
	if p := components.Transform.Get(pivot).Transform; p != nil {
		pivotPos = p
	}

	ctrl := orbit.NewController(settings, pivotPos, t)
	ctrl.Initialize()
	components.Orbit.SetValue(view, components.OrbitData{Controller: ctrl})

	return view
}
