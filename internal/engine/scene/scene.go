// Package scene assembles the sphere grid and its light list from
// configuration. Each sphere carries one material; metallic sweeps
// across columns and roughness across rows.
package scene

import (
	gomath "math"

	"github.com/shogonir/three-lab/internal/config"
	"github.com/shogonir/three-lab/internal/engine/geometry"
	"github.com/shogonir/three-lab/internal/engine/shading"
	"github.com/shogonir/three-lab/pkg/math"
)

// MinRoughness keeps the distribution term away from its degenerate
// zero-roughness limit on the first grid row.
const MinRoughness = 0.05

// Instance is one sphere in the grid: its analytic shape for ray
// queries plus the material the evaluator shades it with.
type Instance struct {
	Sphere   geometry.Sphere
	Material shading.Material
}

// Scene is the flat sphere grid. Mesh is the shared tessellation every
// instance is drawn with; per-instance placement comes from Sphere.Center.
type Scene struct {
	Instances []Instance
	Lights    []shading.Light
	Mesh      geometry.Mesh
}

// Build constructs the grid described by cfg, centered on the origin in
// the z=0 plane.
func Build(cfg *config.Config) *Scene {
	sc := cfg.Scene
	s := &Scene{
		Mesh:   geometry.UVSphere(sc.SphereRadius, sc.SphereSlices, sc.SphereStacks),
		Lights: BuildLights(cfg.Lights),
	}

	albedo := vec3(sc.Albedo)
	for row := 0; row < sc.Rows; row++ {
		for col := 0; col < sc.Cols; col++ {
			center := math.Vec3{
				X: (float32(col) - float32(sc.Cols-1)/2) * sc.Spacing,
				Y: (float32(sc.Rows-1)/2 - float32(row)) * sc.Spacing,
			}
			s.Instances = append(s.Instances, Instance{
				Sphere: geometry.Sphere{Center: center, Radius: sc.SphereRadius},
				Material: shading.Material{
					Albedo:    albedo,
					Metallic:  gridParam(col, sc.Cols),
					Roughness: max32(gridParam(row, sc.Rows), MinRoughness),
				},
			})
		}
	}
	return s
}

// BuildLights converts the configured light list into evaluator lights,
// preserving declaration order: directional, then point, then spot.
func BuildLights(cfg config.LightsConfig) []shading.Light {
	var lights []shading.Light
	for _, d := range cfg.Directional {
		lights = append(lights, shading.DirectionalLight{
			Direction: vec3(d.Direction).Normalize(),
			Color:     vec3(d.Color),
			Space:     parseSpace(d.Space),
		})
	}
	for _, p := range cfg.Point {
		lights = append(lights, shading.PointLight{
			Position: vec3(p.Position),
			Color:    vec3(p.Color),
			Distance: p.Distance,
			Decay:    p.Decay,
		})
	}
	for _, sp := range cfg.Spot {
		lights = append(lights, shading.SpotLight{
			Position:    vec3(sp.Position),
			Direction:   vec3(sp.Direction).Normalize(),
			Color:       vec3(sp.Color),
			Distance:    sp.Distance,
			Decay:       sp.Decay,
			ConeCos:     cosDegrees(sp.ConeDegrees),
			PenumbraCos: cosDegrees(sp.PenumbraDeg),
		})
	}
	return lights
}

func parseSpace(s string) shading.LightSpace {
	if s == "view" {
		return shading.ViewSpace
	}
	return shading.WorldSpace
}

// gridParam maps a grid index to [0,1]; a single row or column sits at 1.
func gridParam(i, n int) float32 {
	if n <= 1 {
		return 1
	}
	return float32(i) / float32(n-1)
}

func cosDegrees(deg float32) float32 {
	return float32(gomath.Cos(float64(deg) * gomath.Pi / 180))
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
