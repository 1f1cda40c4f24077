package scene

import (
	gomath "math"
	"testing"

	"github.com/shogonir/three-lab/internal/config"
	"github.com/shogonir/three-lab/internal/engine/shading"
)

func TestBuildGridLayout(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Rows = 3
	cfg.Scene.Cols = 5
	cfg.Scene.Spacing = 0.5

	s := Build(cfg)

	if got := len(s.Instances); got != 15 {
		t.Fatalf("instance count = %d, want 15", got)
	}

	// The grid is centered on the origin.
	var sumX, sumY float32
	for _, inst := range s.Instances {
		sumX += inst.Sphere.Center.X
		sumY += inst.Sphere.Center.Y
		if inst.Sphere.Center.Z != 0 {
			t.Errorf("sphere at %v off the z=0 plane", inst.Sphere.Center)
		}
	}
	if sumX != 0 || sumY != 0 {
		t.Errorf("grid centroid = (%v, %v), want origin", sumX, sumY)
	}

	// Neighbors in a row are one spacing apart.
	dx := s.Instances[1].Sphere.Center.X - s.Instances[0].Sphere.Center.X
	if dx != 0.5 {
		t.Errorf("column spacing = %v, want 0.5", dx)
	}
}

func TestBuildMaterialSweep(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Rows = 5
	cfg.Scene.Cols = 5

	s := Build(cfg)

	first := s.Instances[0].Material
	if first.Metallic != 0 {
		t.Errorf("first column metallic = %v, want 0", first.Metallic)
	}
	if first.Roughness != MinRoughness {
		t.Errorf("first row roughness = %v, want %v", first.Roughness, MinRoughness)
	}

	last := s.Instances[len(s.Instances)-1].Material
	if last.Metallic != 1 {
		t.Errorf("last column metallic = %v, want 1", last.Metallic)
	}
	if last.Roughness != 1 {
		t.Errorf("last row roughness = %v, want 1", last.Roughness)
	}

	// Metallic varies along a row, roughness along a column.
	if s.Instances[2].Material.Roughness != first.Roughness {
		t.Error("roughness changed within a row")
	}
	if s.Instances[10].Material.Metallic != 0 {
		t.Error("metallic changed within a column")
	}
}

func TestBuildSingleSphere(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Rows = 1
	cfg.Scene.Cols = 1

	s := Build(cfg)

	if len(s.Instances) != 1 {
		t.Fatalf("instance count = %d, want 1", len(s.Instances))
	}
	inst := s.Instances[0]
	if inst.Sphere.Center.X != 0 || inst.Sphere.Center.Y != 0 || inst.Sphere.Center.Z != 0 {
		t.Errorf("single sphere at %v, want origin", inst.Sphere.Center)
	}
	if inst.Material.Metallic != 1 || inst.Material.Roughness != 1 {
		t.Errorf("single sphere material = %+v, want metallic/roughness 1", inst.Material)
	}
}

func TestBuildLightsOrderAndKinds(t *testing.T) {
	cfg := config.LightsConfig{
		Directional: []config.DirectionalLightConfig{{
			Direction: [3]float32{0, 0, 2},
			Color:     [3]float32{1, 1, 1},
			Space:     "view",
		}},
		Point: []config.PointLightConfig{{
			Position: [3]float32{0, 2, 0},
			Color:    [3]float32{0.5, 0.5, 0.5},
			Distance: 10,
			Decay:    2,
		}},
		Spot: []config.SpotLightConfig{{
			Position:    [3]float32{0, 0, 5},
			Direction:   [3]float32{0, 0, 1},
			Color:       [3]float32{1, 1, 1},
			ConeDegrees: 45,
			PenumbraDeg: 30,
		}},
	}

	lights := BuildLights(cfg)
	if len(lights) != 3 {
		t.Fatalf("light count = %d, want 3", len(lights))
	}

	dl, ok := lights[0].(shading.DirectionalLight)
	if !ok {
		t.Fatalf("lights[0] = %T, want DirectionalLight", lights[0])
	}
	if dl.Space != shading.ViewSpace {
		t.Error("expected view-space directional light")
	}
	if dl.Direction.Z != 1 {
		t.Errorf("direction not normalized: %v", dl.Direction)
	}

	pl, ok := lights[1].(shading.PointLight)
	if !ok {
		t.Fatalf("lights[1] = %T, want PointLight", lights[1])
	}
	if pl.Distance != 10 || pl.Decay != 2 {
		t.Errorf("point cutoff/decay = %v/%v, want 10/2", pl.Distance, pl.Decay)
	}

	sl, ok := lights[2].(shading.SpotLight)
	if !ok {
		t.Fatalf("lights[2] = %T, want SpotLight", lights[2])
	}
	wantCone := float32(gomath.Cos(45 * gomath.Pi / 180))
	if diff := sl.ConeCos - wantCone; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("ConeCos = %v, want cos(45deg) = %v", sl.ConeCos, wantCone)
	}
	if sl.PenumbraCos <= sl.ConeCos {
		t.Error("penumbra cosine should exceed cone cosine for a narrower inner angle")
	}
}

func TestBuildLightsDefaultSpace(t *testing.T) {
	cfg := config.LightsConfig{
		Directional: []config.DirectionalLightConfig{{
			Direction: [3]float32{1, 0, 0},
			Color:     [3]float32{1, 1, 1},
			Space:     "world",
		}},
	}

	lights := BuildLights(cfg)
	dl := lights[0].(shading.DirectionalLight)
	if dl.Space != shading.WorldSpace {
		t.Error("expected world-space directional light")
	}
}
