package main

import (
	"flag"
	"log"

	"github.com/automoto/orbitcam/config"
	"github.com/automoto/orbitcam/fonts"
	"github.com/automoto/orbitcam/scenes"
	"github.com/automoto/orbitcam/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	if err := fonts.LoadDefaults(config.UI.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		scene: scenes.NewOrbitScene(saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func parseFlags() {
	flag.BoolVar(&config.Debug.ShowAxes, "axes", config.Debug.ShowAxes, "draw world axes at the pivot")
	flag.BoolVar(&config.Debug.SkipSave, "no-save", config.Debug.SkipSave, "don't read or write persisted settings")
	flag.Float64Var(&config.Orbit.MaxAngularSpeed, "max-speed", config.Orbit.MaxAngularSpeed, "orbit speed in degrees per second")
	flag.Float64Var(&config.Orbit.AngularAcceleration, "acceleration", config.Orbit.AngularAcceleration, "ramp progress per second")
	flag.Float64Var(&config.Orbit.DefaultDistance, "distance", config.Orbit.DefaultDistance, "starting distance from the pivot")
	flag.Float64Var(&config.Orbit.MinDistance, "min-distance", config.Orbit.MinDistance, "closest zoom distance")
	flag.Float64Var(&config.Orbit.MaxDistance, "max-distance", config.Orbit.MaxDistance, "farthest zoom distance")
	flag.Float64Var(&config.Orbit.ZoomStep, "zoom-step", config.Orbit.ZoomStep, "distance moved per wheel notch")
	flag.Parse()
}

func main() {
	parseFlags()
	if err := config.Orbit.Validate(); err != nil {
		log.Fatalf("Invalid orbit settings: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	var saved *systems.SavedSettings
	if !config.Debug.SkipSave {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		if s, err := systems.LoadSettings(); err == nil && s != nil {
			saved = s
			systems.ApplySavedSettingsGlobal(saved)
		}
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}
