// Package shading implements the physically based surface shading model:
// metallic/roughness materials, punctual lights and the Cook-Torrance
// render equation used by both the GPU shader and the CPU preview path.
package shading

import (
	"github.com/shogonir/three-lab/pkg/math"
)

// dielectricReflectance is the 4% base reflectance of non-metals.
var dielectricReflectance = math.Vec3{X: 0.04, Y: 0.04, Z: 0.04}

// Material holds the per-surface shading parameters. Values are expected
// in [0,1] but are not validated here; the shading math saturates where
// needed, so out-of-range inputs produce defined (if out-of-gamut) output.
type Material struct {
	Albedo    math.Vec3
	Metallic  float32
	Roughness float32
}

// DiffuseColor returns the diffuse base color: albedo scaled toward black
// as the surface becomes metallic.
func (m Material) DiffuseColor() math.Vec3 {
	return m.Albedo.Lerp(math.Vec3{}, m.Metallic)
}

// SpecularColor returns the specular base color: the dielectric 4%
// reflectance blended toward the albedo as the surface becomes metallic.
func (m Material) SpecularColor() math.Vec3 {
	return dielectricReflectance.Lerp(m.Albedo, m.Metallic)
}
