package shading

import (
	"github.com/shogonir/three-lab/pkg/math"
)

// GeometricContext is the interpolated per-fragment geometry the external
// rasterizer supplies. Normal and ViewDir must be unit length; ViewDir
// points from the surface toward the eye.
type GeometricContext struct {
	Position math.Vec3
	Normal   math.Vec3
	ViewDir  math.Vec3
}

// ReflectedLight accumulates outgoing radiance per term. The indirect
// terms stay zero in this configuration; they exist so the render
// equation's composition is explicit.
type ReflectedLight struct {
	DirectDiffuse    math.Vec3
	DirectSpecular   math.Vec3
	IndirectDiffuse  math.Vec3
	IndirectSpecular math.Vec3
}

// Total sums the four accumulators into outgoing radiance.
func (r ReflectedLight) Total() math.Vec3 {
	return r.DirectDiffuse.
		Add(r.DirectSpecular).
		Add(r.IndirectDiffuse).
		Add(r.IndirectSpecular)
}

// RGBA is a shaded fragment color. Alpha is always 1 (opaque).
type RGBA struct {
	R, G, B, A float32
}

// Evaluate runs the render equation for one surface point: it derives the
// material's diffuse and specular base colors, accumulates every visible
// light's direct contribution, and composes the outgoing radiance.
//
// Evaluate is a pure function of its inputs with no shared state, so it
// may be invoked concurrently, one call per fragment.
func Evaluate(geom GeometricContext, mat Material, lights []Light) RGBA {
	diffuseColor := mat.DiffuseColor()
	specularColor := mat.SpecularColor()

	var reflected ReflectedLight
	for _, light := range lights {
		incident := light.Incident(geom)
		if !incident.Visible {
			continue
		}
		accumulateDirect(geom, incident, diffuseColor, specularColor, mat.Roughness, &reflected)
	}

	out := reflected.Total()
	return RGBA{R: out.X, G: out.Y, B: out.Z, A: 1}
}

// accumulateDirect adds one light's direct diffuse and specular terms.
//
// The pi factor in the irradiance cancels the normalized-Lambert division,
// so a unit white light at normal incidence yields unit diffuse output.
// That is the intended convention, not an energy bug.
func accumulateDirect(geom GeometricContext, incident IncidentLight, diffuseColor, specularColor math.Vec3, roughness float32, reflected *ReflectedLight) {
	dotNL := Saturate(geom.Normal.Dot(incident.Direction))
	irradiance := incident.Color.Scale(dotNL * pi)

	reflected.DirectDiffuse = reflected.DirectDiffuse.
		Add(irradiance.MulVec(LambertDiffuse(diffuseColor)))
	reflected.DirectSpecular = reflected.DirectSpecular.
		Add(irradiance.MulVec(CookTorranceSpecular(specularColor, geom, incident.Direction, roughness)))
}
