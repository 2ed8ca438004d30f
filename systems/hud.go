package systems

import (
	"fmt"

	"github.com/automoto/orbitcam/components"
	cfg "github.com/automoto/orbitcam/config"
	"github.com/automoto/orbitcam/fonts"
	"github.com/automoto/orbitcam/orbit"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the orbit state of the viewpoint in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowHUD {
		return
	}

	orbitEntry, ok := components.Orbit.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Orbit.Get(orbitEntry)
	face := fonts.HUD.Get()

	x := cfg.UI.HUDMargin
	y := cfg.UI.HUDMargin + cfg.UI.HUDLineHeight
	for _, line := range hudLines(ctrl.State(), ctrl.Distance(), ctrl.Config()) {
		clr := cfg.UI.TextColor
		if line.active {
			clr = cfg.UI.ActiveColor
		}
		text.Draw(screen, line.text, face, x, y, clr)
		y += cfg.UI.HUDLineHeight
	}
}

type hudLine struct {
	text   string
	active bool
}

// hudLines formats one line per axis plus the zoom distance.
func hudLines(st orbit.State, distance float64, c orbit.Config) []hudLine {
	lines := make([]hudLine, 0, 3)
	for _, axis := range []orbit.Axis{orbit.Yaw, orbit.Pitch} {
		s := st.Axis(axis)
		lines = append(lines, hudLine{
			text: fmt.Sprintf("%-5s dir %s  vel %6.2f  ramp %.2f",
				axis, s.Direction, s.Velocity, s.RampProgress),
			active: !s.Idle(),
		})
	}
	lines = append(lines, hudLine{
		text: fmt.Sprintf("dist  %.2f  [%.2f, %.2f]", distance, c.MinDistance, c.MaxDistance),
	})
	return lines
}
