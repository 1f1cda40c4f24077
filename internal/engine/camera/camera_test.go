package camera

import (
	gomath "math"
	"testing"

	"github.com/shogonir/three-lab/pkg/math"
)

func TestPoseOnSphere(t *testing.T) {
	// The camera must sit on the sphere of the polar radius for any
	// angle pair.
	angles := []Polar{
		{Phi: 0, Theta: 1, Radius: 1},
		{Phi: 1.3, Theta: 0.4, Radius: 1},
		{Phi: -2.5, Theta: 2.9, Radius: 1},
		{Phi: 7.1, Theta: -1.2, Radius: 2.5},
		{Phi: 0.2, Theta: gomath.Pi / 2, Radius: 0.5},
	}

	for _, p := range angles {
		pose := p.Pose()
		r := pose.Position.Length()
		if gomath.Abs(float64(r-p.Radius)) > 1e-5 {
			t.Errorf("Pose(%+v): |position| = %v, want %v", p, r, p.Radius)
		}
	}
}

func TestPoseUpOrthogonalToView(t *testing.T) {
	angles := []Polar{
		{Phi: 0.3, Theta: 0.7, Radius: 1},
		{Phi: 2.1, Theta: 1.9, Radius: 1},
		{Phi: -1.0, Theta: 2.5, Radius: 3},
	}

	for _, p := range angles {
		pose := p.Pose()
		viewDir := pose.Position.Sub(pose.Target)
		if d := pose.Up.Dot(viewDir); gomath.Abs(float64(d)) > 1e-5 {
			t.Errorf("Pose(%+v): up . view = %v, want ~0", p, d)
		}
	}
}

func TestPoseKnownPlacements(t *testing.T) {
	// theta = pi/2, phi = 0 puts the camera on the +X axis with up = +Z.
	pose := Polar{Phi: 0, Theta: gomath.Pi / 2, Radius: 1}.Pose()

	wantPos := math.Vec3{X: 1}
	wantUp := math.Vec3{Z: 1}
	if pose.Position.Distance(wantPos) > 1e-6 {
		t.Errorf("position = %v, want %v", pose.Position, wantPos)
	}
	if pose.Up.Distance(wantUp) > 1e-6 {
		t.Errorf("up = %v, want %v", pose.Up, wantUp)
	}
	if pose.Target != (math.Vec3{}) {
		t.Errorf("target = %v, want origin", pose.Target)
	}
}

func TestOnDragMapsDeltasToAngles(t *testing.T) {
	c := NewController(Polar{Phi: 1, Theta: 1, Radius: 1}, nil)
	c.SetPressed(true)
	c.OnDrag(100, -50)

	got := c.Polar()
	k := float32(DefaultDragSensitivity)
	wantPhi := float32(1) - k*100
	wantTheta := float32(1) + k*50
	if got.Phi != wantPhi {
		t.Errorf("phi = %v, want %v", got.Phi, wantPhi)
	}
	if got.Theta != wantTheta {
		t.Errorf("theta = %v, want %v", got.Theta, wantTheta)
	}
}

func TestOnDragIgnoredWhenReleased(t *testing.T) {
	start := Polar{Phi: 0.5, Theta: 0.5, Radius: 1}
	c := NewController(start, nil)

	c.OnDrag(10, 10)
	c.SetPressed(true)
	c.SetPressed(false)
	c.OnDrag(-40, 25)

	if got := c.Polar(); got != start {
		t.Errorf("polar mutated to %+v while button released, want %+v", got, start)
	}
}

func TestOnDragTriggersRedraw(t *testing.T) {
	var calls int
	var last Pose
	c := NewController(Polar{Theta: 1, Radius: 1}, func(p Pose) {
		calls++
		last = p
	})
	c.SetPressed(true)

	c.OnDrag(5, 5)
	c.OnDrag(5, 5)

	if calls != 2 {
		t.Fatalf("redraw fired %d times, want once per accepted sample", calls)
	}
	if last != c.Pose() {
		t.Error("redraw must receive the freshly recomputed pose")
	}
}

func TestThetaUnclamped(t *testing.T) {
	c := NewController(Polar{Theta: 0.05, Radius: 1}, nil)
	c.SetPressed(true)

	// Drag far past the pole; theta keeps going instead of pinning.
	c.OnDrag(0, 100)
	if got := c.Polar().Theta; got >= 0 {
		t.Errorf("theta = %v, want negative (no pole clamp)", got)
	}

	// Up flips sign past the pole but stays orthogonal to the view.
	pose := c.Pose()
	viewDir := pose.Position.Sub(pose.Target)
	if d := pose.Up.Dot(viewDir); gomath.Abs(float64(d)) > 1e-5 {
		t.Errorf("up . view = %v past the pole, want ~0", d)
	}
}
