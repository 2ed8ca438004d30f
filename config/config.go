package config

import (
	"image/color"

	"github.com/automoto/orbitcam/orbit"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ViewConfig contains projection and initial placement values
type ViewConfig struct {
	FieldOfView   float64 // vertical, degrees
	Near          float64
	Far           float64
	StartPosition mgl64.Vec3 // viewpoint before Initialize moves it to the default distance
	PivotPosition mgl64.Vec3
}

// SceneConfig contains what is drawn around the pivot
type SceneConfig struct {
	GridHalfExtent float64 // grid spans [-extent, extent] on X and Z
	GridSpacing    float64
	GridHeight     float64 // Y of the ground plane relative to the pivot
	PivotSize      float64 // edge length of the pivot cube

	// Marker pulse
	PulsePeak   float32 // scale at the top of the pulse
	PulsePeriod float32 // seconds per pulse
}

// UIConfig contains HUD layout and colors
type UIConfig struct {
	HUDMargin     int
	HUDLineHeight int
	FontSize      float64

	GridColor   color.RGBA
	PivotColor  color.RGBA
	TextColor   color.RGBA
	ActiveColor color.RGBA // HUD lines for axes that are moving
	AxisColors  [3]color.RGBA
	LineWidth   float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowAxes bool // Draw world axes at the pivot
	SkipSave bool // Don't read or write persisted settings
}

// Global configuration instances
var C *Config
var Orbit orbit.Config
var View ViewConfig
var Scene SceneConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green     = color.RGBA{R: 60, G: 220, B: 60, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGrey  = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "orbitcam",
	}

	// Orbit Config
	Orbit = orbit.Config{
		MaxAngularSpeed:     10.0, // degrees per second
		AngularAcceleration: 2.5,  // 0.4s to full speed
		DefaultDistance:     1.5,
		MinDistance:         1.1,
		MaxDistance:         3.0,
		ZoomStep:            0.1,
	}

	// View Config
	View = ViewConfig{
		FieldOfView:   60,
		Near:          0.05,
		Far:           100,
		StartPosition: mgl64.Vec3{0, 1, 3},
		PivotPosition: mgl64.Vec3{0, 0, 0},
	}

	// Scene Config
	Scene = SceneConfig{
		GridHalfExtent: 2.0,
		GridSpacing:    0.25,
		GridHeight:     -0.25,
		PivotSize:      0.3,
		PulsePeak:      1.15,
		PulsePeriod:    1.6,
	}

	// UI Config
	UI = UIConfig{
		HUDMargin:     10,
		HUDLineHeight: 16,
		FontSize:      12,
		GridColor:     DarkGrey,
		PivotColor:    LightBlue,
		TextColor:     White,
		ActiveColor:   Yellow,
		AxisColors:    [3]color.RGBA{Red, Green, Blue},
		LineWidth:     1,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowAxes: false,
		SkipSave: false,
	}
}
