package components

import (
	"github.com/automoto/orbitcam/orbit"
	"github.com/yohamta/donburi"
)

// OrbitData attaches an orbit controller to the viewpoint entity.
// The controller holds the pivot and viewpoint transforms it moves.
type OrbitData struct {
	*orbit.Controller
}

var Orbit = donburi.NewComponentType[OrbitData]()
