// Package preview renders a reference frame on the CPU. Every pixel is
// shaded by the same evaluator the GPU path mirrors, so a preview image
// is a ground-truth picture of the shading pipeline.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	gomath "math"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/shogonir/three-lab/internal/engine/camera"
	"github.com/shogonir/three-lab/internal/engine/geometry"
	"github.com/shogonir/three-lab/internal/engine/scene"
	"github.com/shogonir/three-lab/internal/engine/shading"
)

// Renderer casts one primary ray per pixel against the scene's analytic
// spheres and shades each hit with shading.Evaluate.
type Renderer struct {
	Width      int
	Height     int
	FOVDegrees float32
}

// Render produces the frame seen from the given camera pose. Rows are
// shaded concurrently; the evaluator is pure, so workers share the scene
// without synchronization.
func (r Renderer) Render(s *scene.Scene, pose camera.Pose) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))

	forward := pose.Target.Sub(pose.Position).Normalize()
	right := forward.Cross(pose.Up).Normalize()
	up := right.Cross(forward)

	tanHalf := float32(gomath.Tan(float64(r.FOVDegrees) * gomath.Pi / 360))
	aspect := float32(r.Width) / float32(r.Height)

	lights := shading.ResolveView(s.Lights, pose.ViewMatrix())

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < r.Width; x++ {
					ndcX := (2*(float32(x)+0.5)/float32(r.Width) - 1) * aspect * tanHalf
					ndcY := (1 - 2*(float32(y)+0.5)/float32(r.Height)) * tanHalf

					ray := geometry.Ray{
						Origin: pose.Position,
						Direction: forward.
							Add(right.Scale(ndcX)).
							Add(up.Scale(ndcY)).
							Normalize(),
					}
					img.SetRGBA(x, y, shadePixel(ray, s, lights))
				}
			}
		}()
	}
	for y := 0; y < r.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return img
}

// shadePixel finds the nearest sphere hit and evaluates its material.
// Misses return opaque black.
func shadePixel(ray geometry.Ray, s *scene.Scene, lights []shading.Light) color.RGBA {
	nearest := float32(gomath.Inf(1))
	var hit *scene.Instance
	for i := range s.Instances {
		t, ok := ray.IntersectSphere(s.Instances[i].Sphere)
		if ok && t < nearest {
			nearest = t
			hit = &s.Instances[i]
		}
	}
	if hit == nil {
		return color.RGBA{A: 255}
	}

	p := ray.At(nearest)
	geom := shading.GeometricContext{
		Position: p,
		Normal:   hit.Sphere.NormalAt(p),
		ViewDir:  ray.Direction.Negate(),
	}
	out := shading.Evaluate(geom, hit.Material, lights)
	return color.RGBA{
		R: toByte(out.R),
		G: toByte(out.G),
		B: toByte(out.B),
		A: 255,
	}
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// WritePNG encodes the frame to path, creating parent directories.
func WritePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
