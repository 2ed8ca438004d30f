package systems

import (
	"github.com/automoto/orbitcam/components"
	cfg "github.com/automoto/orbitcam/config"
	"github.com/automoto/orbitcam/shared/gamemath"
	"github.com/automoto/orbitcam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug draws the world X/Y/Z axes through every pivot.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowAxes {
		return
	}

	pr, ok := viewProjector(ecs, screen)
	if !ok {
		return
	}

	tags.Pivot.Each(ecs.World, func(e *donburi.Entry) {
		origin := components.Transform.Get(e).Position()
		axes := gamemath.AxisLines(origin, cfg.Scene.PivotSize*2)
		for i, axis := range axes {
			strokeSegments(screen, pr, []gamemath.Segment{axis}, cfg.UI.AxisColors[i])
		}
	})
}
