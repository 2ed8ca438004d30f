package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the toggles the player can flip at runtime
type SettingsData struct {
	ShowHUD    bool
	ShowAxes   bool
	Fullscreen bool
}

// Settings is the component type for the settings singleton
var Settings = donburi.NewComponentType[SettingsData]()
