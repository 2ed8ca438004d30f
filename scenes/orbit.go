package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/orbitcam/config"
	"github.com/automoto/orbitcam/systems"
	"github.com/automoto/orbitcam/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OrbitScene shows a viewpoint orbiting a single pivot.
type OrbitScene struct {
	ecs   *ecs.ECS
	saved *systems.SavedSettings
	once  sync.Once
}

// NewOrbitScene creates the scene. saved may be nil.
func NewOrbitScene(saved *systems.SavedSettings) *OrbitScene {
	return &OrbitScene{saved: saved}
}

func (os *OrbitScene) Update() {
	os.once.Do(os.configure)
	os.ecs.Update()
}

func (os *OrbitScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if os.ecs == nil {
		return
	}
	os.ecs.Draw(screen)
}

func (os *OrbitScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateOrbit) // Must run after UpdateInput
	ecs.AddSystem(systems.UpdateTweens)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	os.ecs = ecs

	pivot := factory.CreatePivot(os.ecs, cfg.View.PivotPosition)
	factory.CreateViewpoint(os.ecs, pivot, cfg.View.StartPosition, cfg.Orbit)

	systems.GetOrCreateSettings(os.ecs)
	systems.ApplySavedSettings(os.ecs, os.saved)
}
