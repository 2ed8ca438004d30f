package tags

import "github.com/yohamta/donburi"

var (
	Pivot     = donburi.NewTag().SetName("Pivot")
	Viewpoint = donburi.NewTag().SetName("Viewpoint")
)
