// Package geometry provides the procedural sphere mesh and the ray
// queries the CPU preview path rasterizes with.
package geometry

import (
	gomath "math"

	"github.com/shogonir/three-lab/pkg/math"
)

// Mesh holds interleaved vertex data (position xyz, normal xyz) and a
// triangle index list, laid out for direct upload to a GL buffer.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// Stride is the number of floats per vertex.
const Stride = 6

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / Stride
}

// UVSphere tessellates a sphere of the given radius into segments
// longitude slices and rings latitude bands. Non-positive counts fall
// back to a medium tessellation.
func UVSphere(radius float32, segments, rings int) Mesh {
	if segments <= 0 {
		segments = 32
	}
	if rings <= 0 {
		rings = 16
	}

	var m Mesh
	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * gomath.Pi / float64(rings)
		sinTheta := float32(gomath.Sin(theta))
		cosTheta := float32(gomath.Cos(theta))

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2 * gomath.Pi / float64(segments)
			sinPhi := float32(gomath.Sin(phi))
			cosPhi := float32(gomath.Cos(phi))

			// Unit-sphere position doubles as the normal.
			x := cosPhi * sinTheta
			y := cosTheta
			z := sinPhi * sinTheta

			m.Vertices = append(m.Vertices,
				x*radius, y*radius, z*radius,
				x, y, z,
			)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1

			m.Indices = append(m.Indices, current, next, current+1)
			m.Indices = append(m.Indices, current+1, next, next+1)
		}
	}

	return m
}

// Sphere is an analytic sphere for ray queries.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// NormalAt returns the outward unit normal at a surface point.
func (s Sphere) NormalAt(p math.Vec3) math.Vec3 {
	return p.Sub(s.Center).Scale(1 / s.Radius)
}
