package config

// SettingsConfig contains persisted-settings defaults
type SettingsConfig struct {
	AppName    string // gdata application directory
	ItemKey    string
	ShowHUD    bool
	Fullscreen bool
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:    "orbitcam",
		ItemKey:    "settings",
		ShowHUD:    true,
		Fullscreen: false,
	}
}
