package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Local axes of a transform. The camera looks down -Z with +Y up.
var (
	localForward = mgl64.Vec3{0, 0, -1}
	localUp      = mgl64.Vec3{0, 1, 0}
	localRight   = mgl64.Vec3{1, 0, 0}
)

// Transform is a position plus orientation in world space.
type Transform struct {
	position    mgl64.Vec3
	orientation mgl64.Quat
}

// NewTransform returns an unrotated transform at pos.
func NewTransform(pos mgl64.Vec3) *Transform {
	return &Transform{
		position:    pos,
		orientation: mgl64.QuatIdent(),
	}
}

func (t *Transform) Position() mgl64.Vec3 {
	return t.position
}

func (t *Transform) SetPosition(p mgl64.Vec3) {
	t.position = p
}

func (t *Transform) Orientation() mgl64.Quat {
	return t.orientation
}

// Forward returns the unit vector the transform is facing.
func (t *Transform) Forward() mgl64.Vec3 {
	return t.orientation.Rotate(localForward)
}

// Up returns the transform's unit up vector.
func (t *Transform) Up() mgl64.Vec3 {
	return t.orientation.Rotate(localUp)
}

// Right returns the transform's unit right vector.
func (t *Transform) Right() mgl64.Vec3 {
	return t.orientation.Rotate(localRight)
}

// LookAt turns the transform to face target, keeping world up as close to
// the transform's up as possible. Looking at its own position is a no-op.
func (t *Transform) LookAt(target mgl64.Vec3) {
	dir := target.Sub(t.position)
	if dir.Len() < 1e-9 {
		return
	}
	forward := dir.Normalize()

	up := localUp
	if math.Abs(forward.Dot(up)) > 1-1e-9 {
		// Straight up or down: keep the current heading instead
		up = t.Forward()
		if math.Abs(forward.Dot(up)) > 1-1e-9 {
			up = localForward
		}
	}

	right := forward.Cross(up).Normalize()
	up = right.Cross(forward)

	basis := mgl64.Mat3FromCols(right, up, forward.Mul(-1))
	t.orientation = mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
}

// RotateAround rotates the transform about an axis through point, moving its
// position and turning its orientation by the same amount. Positive degrees
// turn clockwise when looking along axis.
func (t *Transform) RotateAround(point, axis mgl64.Vec3, degrees float64) {
	if axis.Len() < 1e-9 || degrees == 0 {
		return
	}
	q := mgl64.QuatRotate(-mgl64.DegToRad(degrees), axis.Normalize())
	t.position = point.Add(q.Rotate(t.position.Sub(point)))
	t.orientation = q.Mul(t.orientation).Normalize()
}
