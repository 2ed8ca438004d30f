package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MarkerData describes the cube drawn at the pivot
type MarkerData struct {
	Size  float64 // edge length at scale 1
	Scale float64 // current pulse scale
	Color color.RGBA
}

var Marker = donburi.NewComponentType[MarkerData]()

// Tween drives a looping value such as the marker pulse
var Tween = donburi.NewComponentType[gween.Sequence]()
