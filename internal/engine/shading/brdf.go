package shading

import (
	gomath "math"

	"github.com/shogonir/three-lab/pkg/math"
)

const (
	pi = float32(gomath.Pi)

	// epsilon guards the denominators that vanish at grazing angles.
	// Division by zero is designed out, not branched around.
	epsilon = 1e-6
)

// Saturate clamps x to [0, 1].
func Saturate(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Smoothstep is the Hermite interpolation between edge0 and edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

func pow32(x, y float32) float32 {
	return float32(gomath.Pow(float64(x), float64(y)))
}

// LambertDiffuse is the normalized Lambert diffuse BRDF, color/pi.
func LambertDiffuse(diffuseColor math.Vec3) math.Vec3 {
	return diffuseColor.Scale(1 / pi)
}

// GGXDistribution is the Trowbridge-Reitz normal distribution for
// microfacet alpha (alpha = roughness squared).
func GGXDistribution(alpha, dotNH float32) float32 {
	a2 := alpha * alpha
	d := dotNH*dotNH*(a2-1) + 1
	return a2 / (pi * d * d)
}

// SmithSchlickGeometry is the Schlick approximation of the Smith
// shadowing-masking term.
func SmithSchlickGeometry(alpha, dotNL, dotNV float32) float32 {
	k := alpha*alpha*0.5 + epsilon
	gl := dotNL / (dotNL*(1-k) + k)
	gv := dotNV / (dotNV*(1-k) + k)
	return gl * gv
}

// SchlickFresnel is the Schlick approximation of the Fresnel reflectance.
func SchlickFresnel(specularColor math.Vec3, dotVH float32) math.Vec3 {
	f := pow32(1-Saturate(dotVH), 5)
	one := math.Vec3{X: 1, Y: 1, Z: 1}
	return specularColor.Add(one.Sub(specularColor).Scale(f))
}

// CookTorranceSpecular evaluates the microfacet specular BRDF
// F*G*D / (4*dotNL*dotNV + epsilon) for the given light direction.
func CookTorranceSpecular(specularColor math.Vec3, geom GeometricContext, lightDir math.Vec3, roughness float32) math.Vec3 {
	alpha := roughness * roughness

	n := geom.Normal
	v := geom.ViewDir
	l := lightDir
	h := l.Add(v).Normalize()

	dotNL := Saturate(n.Dot(l))
	dotNV := Saturate(n.Dot(v))
	dotNH := Saturate(n.Dot(h))
	dotVH := Saturate(v.Dot(h))

	d := GGXDistribution(alpha, dotNH)
	g := SmithSchlickGeometry(alpha, dotNL, dotNV)
	f := SchlickFresnel(specularColor, dotVH)

	return f.Scale(g * d / (4*dotNL*dotNV + epsilon))
}
