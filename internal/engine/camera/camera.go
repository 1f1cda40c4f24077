// Package camera provides the polar orbit camera used by the viewer.
package camera

import (
	gomath "math"

	"github.com/shogonir/three-lab/pkg/math"
)

// DefaultDragSensitivity maps pointer deltas to radians.
const DefaultDragSensitivity = 0.002

// Polar is a spherical coordinate triple. Phi and theta are unbounded;
// they wrap implicitly through the trigonometry. Radius must be positive.
type Polar struct {
	Phi    float32
	Theta  float32
	Radius float32
}

// Pose is a derived camera placement: a position on the sphere of the
// polar radius, looking at the origin. Up is recomputed from the angles
// each time, never accumulated.
type Pose struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// Pose derives the camera placement from the polar triple.
//
// The up vector is the analytic derivative of the position with respect
// to theta, which keeps the camera north-pole-up without any gimbal
// correction. Theta outside (0, pi) flips the sign region of that
// derivative and the view rolls 180 degrees; see Controller.OnDrag.
func (p Polar) Pose() Pose {
	sinTheta := float32(gomath.Sin(float64(p.Theta)))
	cosTheta := float32(gomath.Cos(float64(p.Theta)))
	cosPhi := float32(gomath.Cos(float64(p.Phi)))
	sinPhi := float32(gomath.Sin(float64(p.Phi)))

	return Pose{
		Position: math.Vec3{
			X: p.Radius * sinTheta * cosPhi,
			Y: p.Radius * sinTheta * sinPhi,
			Z: p.Radius * cosTheta,
		},
		Target: math.Vec3{},
		Up: math.Vec3{
			X: -cosTheta * cosPhi,
			Y: -cosTheta * sinPhi,
			Z: sinTheta,
		},
	}
}

// ViewMatrix returns the look-at matrix for this pose.
func (p Pose) ViewMatrix() math.Mat4 {
	return math.LookAt(p.Position, p.Target, p.Up)
}

// Controller turns pointer drag deltas into polar camera motion. Pressed
// state is owned by the input layer; the controller only applies the
// delta-to-angle mapping while that state is set. Events are delivered
// serially, so the controller carries no locking.
type Controller struct {
	polar       Polar
	sensitivity float32
	pressed     bool

	// onChange fires once per accepted drag sample so the owner can
	// redraw synchronously with the fresh pose.
	onChange func(Pose)
}

// NewController creates a controller starting at the given polar triple.
// redraw may be nil.
func NewController(polar Polar, redraw func(Pose)) *Controller {
	return &Controller{
		polar:       polar,
		sensitivity: DefaultDragSensitivity,
		onChange:    redraw,
	}
}

// SetSensitivity overrides the drag sensitivity.
func (c *Controller) SetSensitivity(k float32) {
	c.sensitivity = k
}

// SetPressed records whether the orbit button is currently held.
func (c *Controller) SetPressed(pressed bool) {
	c.pressed = pressed
}

// Pressed reports the last recorded button state.
func (c *Controller) Pressed() bool {
	return c.pressed
}

// Polar returns the current spherical coordinates.
func (c *Controller) Polar() Polar {
	return c.polar
}

// Pose derives the current camera pose.
func (c *Controller) Pose() Pose {
	return c.polar.Pose()
}

// OnDrag consumes one pointer delta sample. Ignored unless the button is
// held. Theta is intentionally unclamped: past the poles the analytic up
// vector flips sign and the view rolls 180 degrees.
func (c *Controller) OnDrag(deltaX, deltaY float32) {
	if !c.pressed {
		return
	}

	c.polar.Phi -= c.sensitivity * deltaX
	c.polar.Theta -= c.sensitivity * deltaY

	if c.onChange != nil {
		c.onChange(c.polar.Pose())
	}
}
