package systems

import (
	"image/color"

	"github.com/automoto/orbitcam/components"
	cfg "github.com/automoto/orbitcam/config"
	"github.com/automoto/orbitcam/shared/gamemath"
	"github.com/automoto/orbitcam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewProjector builds a projector for the viewpoint entity.
func viewProjector(ecs *ecs.ECS, screen *ebiten.Image) (gamemath.Projector, bool) {
	viewEntry, ok := tags.Viewpoint.First(ecs.World)
	if !ok {
		return gamemath.Projector{}, false // No viewpoint yet
	}
	cam := components.Transform.Get(viewEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	if width == 0 || height == 0 {
		return gamemath.Projector{}, false
	}
	return gamemath.NewProjector(cam.Transform, cfg.View.FieldOfView, cfg.View.Near, cfg.View.Far, width, height), true
}

// strokeSegments projects and draws each segment, skipping those that cross
// behind the camera.
func strokeSegments(screen *ebiten.Image, pr gamemath.Projector, segments []gamemath.Segment, clr color.Color) {
	for _, s := range segments {
		x0, y0, x1, y1, ok := pr.Segment(s[0], s[1])
		if !ok {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), cfg.UI.LineWidth, clr, true)
	}
}

// DrawScene renders the ground grid and the pivot cube from the viewpoint.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	pr, ok := viewProjector(ecs, screen)
	if !ok {
		return
	}

	tags.Pivot.Each(ecs.World, func(e *donburi.Entry) {
		center := components.Transform.Get(e).Position()
		grid := gamemath.GridLines(center, cfg.Scene.GridHalfExtent, cfg.Scene.GridSpacing, cfg.Scene.GridHeight)
		strokeSegments(screen, pr, grid, cfg.UI.GridColor)

		marker := components.Marker.Get(e)
		strokeSegments(screen, pr, gamemath.CubeEdges(center, marker.Size*marker.Scale), marker.Color)
	})
}
