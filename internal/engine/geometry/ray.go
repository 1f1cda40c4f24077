package geometry

import (
	gomath "math"

	"github.com/shogonir/three-lab/pkg/math"
)

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectSphere returns the nearest positive hit parameter, or false
// when the ray misses the sphere or the sphere lies behind the origin.
func (r Ray) IntersectSphere(s Sphere) (t float32, hit bool) {
	oc := r.Origin.Sub(s.Center)

	// Quadratic at^2 + 2bt + c = 0 with a = 1 for a unit direction.
	halfB := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := halfB*halfB - c
	if disc < 0 {
		return 0, false
	}

	sqrtD := float32(gomath.Sqrt(float64(disc)))
	root := -halfB - sqrtD
	if root <= 0 {
		root = -halfB + sqrtD
		if root <= 0 {
			return 0, false
		}
	}
	return root, true
}
