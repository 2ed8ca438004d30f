package orbit

import "github.com/go-gl/mathgl/mgl64"

type point mgl64.Vec3

func (p point) Position() mgl64.Vec3 { return mgl64.Vec3(p) }

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() < tol
}

type rotation struct {
	point   mgl64.Vec3
	axis    mgl64.Vec3
	degrees float64
}

// fakeView records rotations without applying them, so axes stay fixed.
type fakeView struct {
	pos       mgl64.Vec3
	fwd       mgl64.Vec3
	up        mgl64.Vec3
	right     mgl64.Vec3
	rotations []rotation
}

func newFakeView(pos mgl64.Vec3) *fakeView {
	return &fakeView{
		pos:   pos,
		fwd:   mgl64.Vec3{0, 0, -1},
		up:    mgl64.Vec3{0, 1, 0},
		right: mgl64.Vec3{1, 0, 0},
	}
}

func (f *fakeView) Position() mgl64.Vec3     { return f.pos }
func (f *fakeView) SetPosition(p mgl64.Vec3) { f.pos = p }
func (f *fakeView) Forward() mgl64.Vec3      { return f.fwd }
func (f *fakeView) Up() mgl64.Vec3           { return f.up }
func (f *fakeView) Right() mgl64.Vec3        { return f.right }

func (f *fakeView) LookAt(target mgl64.Vec3) {
	if dir := target.Sub(f.pos); dir.Len() > 0 {
		f.fwd = dir.Normalize()
	}
}

func (f *fakeView) RotateAround(p, axis mgl64.Vec3, degrees float64) {
	f.rotations = append(f.rotations, rotation{point: p, axis: axis, degrees: degrees})
}

func (f *fakeView) rotationsAbout(axis mgl64.Vec3) []rotation {
	var out []rotation
	for _, r := range f.rotations {
		if r.axis == axis {
			out = append(out, r)
		}
	}
	return out
}

// press builds a snapshot with the given keys going down.
func press(keys ...Key) Snapshot {
	var s Snapshot
	for _, k := range keys {
		s.Down[k] = true
	}
	return s
}

// release builds a snapshot with the given keys going up.
func release(keys ...Key) Snapshot {
	var s Snapshot
	for _, k := range keys {
		s.Up[k] = true
	}
	return s
}

func scroll(delta float64) Snapshot {
	return Snapshot{ScrollDelta: delta}
}
