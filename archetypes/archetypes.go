package archetypes

import (
	"github.com/automoto/orbitcam/components"
	cfg "github.com/automoto/orbitcam/config"
	"github.com/automoto/orbitcam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Pivot = newArchetype(
		tags.Pivot,
		components.Transform,
		components.Marker,
		components.Tween,
	)
	Viewpoint = newArchetype(
		tags.Viewpoint,
		components.Transform,
		components.Orbit,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
