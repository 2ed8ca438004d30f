package orbit

import "github.com/go-gl/mathgl/mgl64"

// Pivot is the point the viewpoint orbits around.
type Pivot interface {
	Position() mgl64.Vec3
}

// Transform is the viewpoint the controller moves.
//
// RotateAround angles are in degrees and follow the left-hand rule: a
// positive angle turns clockwise when looking along axis.
type Transform interface {
	Pivot
	SetPosition(p mgl64.Vec3)
	Forward() mgl64.Vec3
	Up() mgl64.Vec3
	Right() mgl64.Vec3
	LookAt(target mgl64.Vec3)
	RotateAround(point, axis mgl64.Vec3, degrees float64)
}

func distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// approximately compares with a relative tolerance of 1e-6. Near zero the
// tolerance becomes absolute and much tighter.
func approximately(a, b float64) bool {
	return mgl64.FloatEqualThreshold(a, b, 1e-6)
}
