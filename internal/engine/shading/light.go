package shading

import (
	"github.com/shogonir/three-lab/pkg/math"
)

// LightSpace tells which coordinate frame a directional light's direction
// lives in. ViewSpace lights keep their apparent direction fixed relative
// to the camera; they must be resolved into world space with ResolveView
// before evaluation.
type LightSpace int

const (
	WorldSpace LightSpace = iota
	ViewSpace
)

// IncidentLight is the irradiance a light delivers at one surface point.
// Direction points from the surface toward the light and has unit length.
// When the light geometrically excludes the point, Color is zero and
// Visible is false.
type IncidentLight struct {
	Color     math.Vec3
	Direction math.Vec3
	Visible   bool
}

// Light is a punctual light source. Incident computes the light's
// contribution at a surface point; implementations are immutable values
// and safe to share across concurrent evaluations.
type Light interface {
	Incident(geom GeometricContext) IncidentLight
}

// DirectionalLight illuminates every point from the same direction,
// as if located infinitely far away. Direction points from the surface
// toward the light and must have unit length.
type DirectionalLight struct {
	Direction math.Vec3
	Color     math.Vec3
	Space     LightSpace
}

// Incident returns the precomputed direction and color; a directional
// light is never distance-attenuated and always visible.
func (l DirectionalLight) Incident(GeometricContext) IncidentLight {
	return IncidentLight{
		Color:     l.Color,
		Direction: l.Direction,
		Visible:   true,
	}
}

// PointLight emits in all directions from Position. Distance is the range
// cutoff (0 means unlimited) and Decay shapes the falloff toward that
// cutoff (0 or less means no falloff).
type PointLight struct {
	Position math.Vec3
	Color    math.Vec3
	Distance float32
	Decay    float32
}

// Incident attenuates the light by range and decay. Points at or beyond
// the distance cutoff receive exactly zero.
func (l PointLight) Incident(geom GeometricContext) IncidentLight {
	toLight := l.Position.Sub(geom.Position)
	d := toLight.Length()

	if l.Distance != 0 && d >= l.Distance {
		return IncidentLight{}
	}

	return IncidentLight{
		Color:     l.Color.Scale(rangeAttenuation(d, l.Distance, l.Decay)),
		Direction: toLight.Normalize(),
		Visible:   true,
	}
}

// SpotLight is a point light restricted to a cone. Direction points from
// the lit area toward the light, matching the incident-light convention.
// ConeCos is the cosine of the outer cone angle; PenumbraCos the cosine of
// the inner angle where the falloff ends.
type SpotLight struct {
	Position    math.Vec3
	Direction   math.Vec3
	Color       math.Vec3
	Distance    float32
	Decay       float32
	ConeCos     float32
	PenumbraCos float32
}

// Incident applies the cone test, the smoothstep penumbra falloff and the
// point-light range attenuation.
func (l SpotLight) Incident(geom GeometricContext) IncidentLight {
	toLight := l.Position.Sub(geom.Position)
	d := toLight.Length()
	dir := toLight.Normalize()

	angleCos := dir.Dot(l.Direction)
	if angleCos <= l.ConeCos {
		return IncidentLight{}
	}
	if l.Distance != 0 && d >= l.Distance {
		return IncidentLight{}
	}

	spotEffect := Smoothstep(l.ConeCos, l.PenumbraCos, angleCos)
	return IncidentLight{
		Color:     l.Color.Scale(spotEffect * rangeAttenuation(d, l.Distance, l.Decay)),
		Direction: dir,
		Visible:   true,
	}
}

// rangeAttenuation is pow(saturate(1 - d/distance), decay), or 1 when the
// light has no cutoff or no decay.
func rangeAttenuation(d, distance, decay float32) float32 {
	if decay <= 0 || distance <= 0 {
		return 1
	}
	return pow32(Saturate(1-d/distance), decay)
}

// ResolveView returns the light list with every view-space directional
// light re-expressed in world coordinates for the given view matrix.
// World-space lights pass through unchanged.
func ResolveView(lights []Light, view math.Mat4) []Light {
	resolved := make([]Light, len(lights))
	for i, l := range lights {
		if dl, ok := l.(DirectionalLight); ok && dl.Space == ViewSpace {
			dl.Direction = view.Transpose().TransformDirection(dl.Direction).Normalize()
			dl.Space = WorldSpace
			resolved[i] = dl
			continue
		}
		resolved[i] = l
	}
	return resolved
}
