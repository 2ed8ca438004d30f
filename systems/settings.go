package systems

import (
	"github.com/automoto/orbitcam/archetypes"
	"github.com/automoto/orbitcam/components"
	cfg "github.com/automoto/orbitcam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings flips the HUD, axes and fullscreen toggles and persists
// every change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if toggleSettings(settings, input) {
		ebiten.SetFullscreen(settings.Fullscreen)
		SaveCurrentSettings(settings)
	}
}

// toggleSettings applies this frame's toggle presses and reports whether
// anything changed.
func toggleSettings(s *components.SettingsData, input *components.InputData) bool {
	changed := false
	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		s.ShowHUD = !s.ShowHUD
		changed = true
	}
	if GetAction(input, cfg.ActionToggleAxes).JustPressed {
		s.ShowAxes = !s.ShowAxes
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		s.Fullscreen = !s.Fullscreen
		changed = true
	}
	return changed
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from config defaults if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			ShowHUD:    cfg.Settings.ShowHUD,
			ShowAxes:   cfg.Debug.ShowAxes,
			Fullscreen: cfg.Settings.Fullscreen,
		})
	}
	return components.Settings.Get(entry)
}
