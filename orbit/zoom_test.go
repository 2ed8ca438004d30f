package orbit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestZoomGate(t *testing.T) {
	cases := []struct {
		name  string
		start float64
		delta float64
		want  float64
	}{
		{"in_inside_range", 2.0, 1, 1.75},
		{"in_at_min", 1.0, 1, 0.75},
		{"in_below_min", 0.75, 1, 0.75},
		{"out_inside_range", 2.0, -1, 2.25},
		{"out_at_max", 3.0, -1, 3.25},
		{"out_above_max", 3.25, -1, 3.25},
		{"no_scroll", 2.0, 0, 2.0},
		{"scroll_magnitude_ignored", 2.0, 5, 1.75},
	}

	cfg := defaultConfig()
	cfg.MinDistance = 1.0
	cfg.MaxDistance = 3.0
	cfg.ZoomStep = 0.25

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			view := newFakeView(mgl64.Vec3{0, 0, c.start})
			ctrl := NewController(cfg, point{}, view)

			ctrl.Advance(binaryDt, scroll(c.delta))

			if got := ctrl.Distance(); got != c.want {
				t.Fatalf("distance = %v, want %v", got, c.want)
			}
		})
	}
}

// The gate reads the distance before the step, so the last permitted step
// ends up to one ZoomStep inside MinDistance.
func TestZoomInOvershootsByOneStep(t *testing.T) {
	cfg := defaultConfig()
	cfg.MinDistance = 1.1
	cfg.ZoomStep = 0.25

	view := newFakeView(mgl64.Vec3{0, 0, 2})
	ctrl := NewController(cfg, point{}, view)

	var got []float64
	for i := 0; i < 10; i++ {
		ctrl.Advance(binaryDt, scroll(1))
		got = append(got, ctrl.Distance())
	}

	want := []float64{1.75, 1.5, 1.25, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("distances = %v, want %v", got, want)
		}
	}
	if final := got[len(got)-1]; final >= cfg.MinDistance || cfg.MinDistance-final > cfg.ZoomStep {
		t.Fatalf("final distance %v should be below min by at most one step", final)
	}
}

func TestZoomOutScenario(t *testing.T) {
	cfg := defaultConfig()
	view := newFakeView(mgl64.Vec3{0, 0, 1.5})
	ctrl := NewController(cfg, point{}, view)

	prev := ctrl.Distance()
	steps := 0
	for i := 0; i < 40; i++ {
		ctrl.Advance(1.0/60, scroll(-1))
		d := ctrl.Distance()
		if d > prev {
			steps++
			if prev > cfg.MaxDistance {
				t.Fatalf("stepped out from %v, beyond max %v", prev, cfg.MaxDistance)
			}
		}
		prev = d
	}

	if prev < cfg.MaxDistance-1e-9 {
		t.Fatalf("final distance %v never reached max", prev)
	}
	if prev > cfg.MaxDistance+cfg.ZoomStep+1e-9 {
		t.Fatalf("final distance %v overshoots max by more than one step", prev)
	}
	if steps < 15 || steps > 16 {
		t.Fatalf("took %d steps from 1.5, want 15 or 16", steps)
	}
}

func TestZoomMovesAlongForward(t *testing.T) {
	view := newFakeView(mgl64.Vec3{1, 1, 1})
	view.LookAt(mgl64.Vec3{})
	ctrl := NewController(defaultConfig(), point{}, view)

	ctrl.Advance(binaryDt, scroll(1))

	want := mgl64.Vec3{1, 1, 1}.Add(view.fwd.Mul(0.1))
	if !vecNear(view.pos, want, 1e-12) {
		t.Fatalf("position = %v, want %v", view.pos, want)
	}
}

func TestZoomIndependentOfRotation(t *testing.T) {
	ctrl, view := newTestController(binaryConfig())

	in := press(KeyYawPositive)
	in.ScrollDelta = -1
	ctrl.Advance(binaryDt, in)

	if len(view.rotations) != 1 {
		t.Fatalf("rotations = %d, want 1", len(view.rotations))
	}
	if d := ctrl.Distance(); !near(d, 1.6) {
		t.Fatalf("distance = %v, want 1.6", d)
	}
}
