package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Projector maps world points to screen pixels for a perspective camera.
type Projector struct {
	viewProj      mgl64.Mat4
	near          float64
	width, height float64
}

// NewProjector builds a projector looking through cam.
// fovY is the vertical field of view in degrees.
func NewProjector(cam *Transform, fovY, near, far float64, width, height int) Projector {
	aspect := float64(width) / float64(height)
	proj := mgl64.Perspective(mgl64.DegToRad(fovY), aspect, near, far)
	eye := cam.Position()
	view := mgl64.LookAtV(eye, eye.Add(cam.Forward()), cam.Up())
	return Projector{
		viewProj: proj.Mul4(view),
		near:     near,
		width:    float64(width),
		height:   float64(height),
	}
}

// Project returns the screen position of p. ok is false when p lies behind
// the near plane.
func (pr Projector) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	clip := pr.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < pr.near {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	x = (ndc.X() + 1) / 2 * pr.width
	y = (1 - ndc.Y()) / 2 * pr.height
	return x, y, true
}

// Segment projects both ends of a line. ok is false when either end is
// behind the near plane.
func (pr Projector) Segment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	x0, y0, okA := pr.Project(a)
	x1, y1, okB := pr.Project(b)
	return x0, y0, x1, y1, okA && okB
}
