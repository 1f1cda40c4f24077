package preview

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/shogonir/three-lab/internal/engine/camera"
	"github.com/shogonir/three-lab/internal/engine/geometry"
	"github.com/shogonir/three-lab/internal/engine/scene"
	"github.com/shogonir/three-lab/internal/engine/shading"
	"github.com/shogonir/three-lab/pkg/math"
)

// testScene is a single lit sphere at the origin.
func testScene() *scene.Scene {
	return &scene.Scene{
		Instances: []scene.Instance{{
			Sphere: geometry.Sphere{Radius: 0.5},
			Material: shading.Material{
				Albedo:    math.Vec3{X: 1, Y: 1, Z: 1},
				Metallic:  0.5,
				Roughness: 0.5,
			},
		}},
		Lights: []shading.Light{
			shading.DirectionalLight{
				Direction: math.Vec3{Z: 1},
				Color:     math.Vec3{X: 1, Y: 1, Z: 1},
			},
		},
	}
}

func frontPose() camera.Pose {
	return camera.Pose{
		Position: math.Vec3{Z: 2},
		Target:   math.Vec3{},
		Up:       math.Vec3{Y: 1},
	}
}

func TestRenderHitAndMiss(t *testing.T) {
	r := Renderer{Width: 64, Height: 64, FOVDegrees: 60}
	img := r.Render(testScene(), frontPose())

	center := img.RGBAAt(32, 32)
	if center.R == 0 && center.G == 0 && center.B == 0 {
		t.Error("center pixel is black, expected a lit sphere")
	}
	if center.A != 255 {
		t.Errorf("center alpha = %d, want 255", center.A)
	}

	corner := img.RGBAAt(0, 0)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Errorf("corner pixel = %v, want black background", corner)
	}
	if corner.A != 255 {
		t.Errorf("background alpha = %d, want 255", corner.A)
	}
}

func TestRenderSymmetry(t *testing.T) {
	// A head-on sphere under a head-on light shades symmetrically about
	// the vertical axis.
	r := Renderer{Width: 63, Height: 63, FOVDegrees: 60}
	img := r.Render(testScene(), frontPose())

	for _, y := range []int{20, 31, 42} {
		left := img.RGBAAt(21, y)
		right := img.RGBAAt(41, y)
		if chanDiff(left.R, right.R) > 1 || chanDiff(left.G, right.G) > 1 || chanDiff(left.B, right.B) > 1 {
			t.Errorf("row %d: mirrored pixels differ: %v vs %v", y, left, right)
		}
	}
}

func chanDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestRenderDeterministic(t *testing.T) {
	// Row-parallel shading must not change the output.
	r := Renderer{Width: 48, Height: 48, FOVDegrees: 60}
	s := testScene()
	pose := frontPose()

	a := r.Render(s, pose)
	b := r.Render(s, pose)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same scene differ")
	}
}

func TestRenderNearestSphereWins(t *testing.T) {
	s := testScene()
	// A second, black-material sphere behind the first must not show.
	s.Instances = append(s.Instances, scene.Instance{
		Sphere: geometry.Sphere{Center: math.Vec3{Z: -5}, Radius: 0.5},
		Material: shading.Material{
			Albedo:    math.Vec3{},
			Metallic:  0,
			Roughness: 1,
		},
	})

	r := Renderer{Width: 32, Height: 32, FOVDegrees: 60}
	img := r.Render(s, frontPose())

	center := img.RGBAAt(16, 16)
	if center.R == 0 && center.G == 0 && center.B == 0 {
		t.Error("front sphere occluded by the sphere behind it")
	}
}

func TestWritePNG(t *testing.T) {
	r := Renderer{Width: 16, Height: 16, FOVDegrees: 60}
	img := r.Render(testScene(), frontPose())

	path := filepath.Join(t.TempDir(), "frames", "preview.png")
	if err := WritePNG(img, path); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written file: %v", err)
	}
	defer file.Close()

	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 16 {
		t.Errorf("decoded size = %v, want 16x16", decoded.Bounds())
	}
}
