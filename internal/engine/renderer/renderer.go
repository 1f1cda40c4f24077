// Package renderer draws the sphere grid with OpenGL. The fragment
// shader evaluates the same BRDF as the CPU evaluator, so the GPU and
// preview images agree up to rasterization differences.
package renderer

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/shogonir/three-lab/internal/engine/camera"
	"github.com/shogonir/three-lab/internal/engine/geometry"
	"github.com/shogonir/three-lab/internal/engine/scene"
	"github.com/shogonir/three-lab/internal/engine/shader"
	"github.com/shogonir/three-lab/internal/engine/shading"
	"github.com/shogonir/three-lab/internal/logger"
	"github.com/shogonir/three-lab/pkg/math"
)

// MaxLights caps each light kind's uniform array.
const MaxLights = 4

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOVDegrees float32
}

// Renderer owns the GL program and the shared sphere mesh buffers.
type Renderer struct {
	config Config

	program *shader.Program

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	locModel     int32
	locView      int32
	locProj      int32
	locCameraPos int32
	locAlbedo    int32
	locMetallic  int32
	locRoughness int32
}

// New initializes GL state and uploads the mesh. Must be called after
// the GL context exists.
func New(cfg Config, mesh geometry.Mesh) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.Compile(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.locModel = r.program.MustUniform("uModel")
	r.locView = r.program.MustUniform("uView")
	r.locProj = r.program.MustUniform("uProjection")
	r.locCameraPos = r.program.MustUniform("uCameraPos")
	r.locAlbedo = r.program.MustUniform("uAlbedo")
	r.locMetallic = r.program.MustUniform("uMetallic")
	r.locRoughness = r.program.MustUniform("uRoughness")

	r.uploadMesh(mesh)

	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// RenderFrame clears and draws every sphere in the scene from the
// given camera pose.
func (r *Renderer) RenderFrame(s *scene.Scene, pose camera.Pose) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := pose.ViewMatrix()
	fovRad := r.config.FOVDegrees * float32(gomath.Pi) / 180
	aspect := float32(r.config.Width) / float32(r.config.Height)
	proj := math.Perspective(fovRad, aspect, 0.01, 100)

	r.program.Use()
	r.program.SetMat4(r.locView, view.Ptr())
	r.program.SetMat4(r.locProj, proj.Ptr())
	r.program.SetVec3(r.locCameraPos, pose.Position.X, pose.Position.Y, pose.Position.Z)

	r.uploadLights(shading.ResolveView(s.Lights, view))

	gl.BindVertexArray(r.vao)
	for _, inst := range s.Instances {
		c := inst.Sphere.Center
		model := math.Translate(c.X, c.Y, c.Z)
		r.program.SetMat4(r.locModel, model.Ptr())

		m := inst.Material
		r.program.SetVec3(r.locAlbedo, m.Albedo.X, m.Albedo.Y, m.Albedo.Z)
		r.program.SetFloat(r.locMetallic, m.Metallic)
		r.program.SetFloat(r.locRoughness, m.Roughness)

		gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// uploadLights writes the resolved light list into the shader's uniform
// arrays, preserving per-kind declaration order. Lights beyond MaxLights
// per kind are dropped.
func (r *Renderer) uploadLights(lights []shading.Light) {
	var nDir, nPoint, nSpot int32
	for _, l := range lights {
		switch v := l.(type) {
		case shading.DirectionalLight:
			if nDir >= MaxLights {
				continue
			}
			r.program.SetVec3(r.program.Uniform(fmt.Sprintf("uDirLightDir[%d]", nDir)),
				v.Direction.X, v.Direction.Y, v.Direction.Z)
			r.program.SetVec3(r.program.Uniform(fmt.Sprintf("uDirLightColor[%d]", nDir)),
				v.Color.X, v.Color.Y, v.Color.Z)
			nDir++
		case shading.PointLight:
			if nPoint >= MaxLights {
				continue
			}
			r.program.SetVec3(r.program.Uniform(fmt.Sprintf("uPointLightPos[%d]", nPoint)),
				v.Position.X, v.Position.Y, v.Position.Z)
			r.program.SetVec3(r.program.Uniform(fmt.Sprintf("uPointLightColor[%d]", nPoint)),
				v.Color.X, v.Color.Y, v.Color.Z)
			r.program.SetFloat(r.program.Uniform(fmt.Sprintf("uPointLightDistance[%d]", nPoint)), v.Distance)
			r.program.SetFloat(r.program.Uniform(fmt.Sprintf("uPointLightDecay[%d]", nPoint)), v.Decay)
			nPoint++
		case shading.SpotLight:
			if nSpot >= MaxLights {
				continue
			}
			r.program.SetVec3(r.program.Uniform(fmt.Sprintf("uSpotLightPos[%d]", nSpot)),
				v.Position.X, v.Position.Y, v.Position.Z)
			r.program.SetVec3(r.program.Uniform(fmt.Sprintf("uSpotLightDir[%d]", nSpot)),
				v.Direction.X, v.Direction.Y, v.Direction.Z)
			r.program.SetVec3(r.program.Uniform(fmt.Sprintf("uSpotLightColor[%d]", nSpot)),
				v.Color.X, v.Color.Y, v.Color.Z)
			r.program.SetFloat(r.program.Uniform(fmt.Sprintf("uSpotLightDistance[%d]", nSpot)), v.Distance)
			r.program.SetFloat(r.program.Uniform(fmt.Sprintf("uSpotLightDecay[%d]", nSpot)), v.Decay)
			r.program.SetFloat(r.program.Uniform(fmt.Sprintf("uSpotLightConeCos[%d]", nSpot)), v.ConeCos)
			r.program.SetFloat(r.program.Uniform(fmt.Sprintf("uSpotLightPenumbraCos[%d]", nSpot)), v.PenumbraCos)
			nSpot++
		}
	}
	r.program.SetInt(r.program.Uniform("uNumDirLights"), nDir)
	r.program.SetInt(r.program.Uniform("uNumPointLights"), nPoint)
	r.program.SetInt(r.program.Uniform("uNumSpotLights"), nSpot)
}

// uploadMesh creates the VAO/VBO/EBO for the shared sphere mesh.
func (r *Renderer) uploadMesh(mesh geometry.Mesh) {
	r.indexCount = int32(len(mesh.Indices))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	stride := int32(geometry.Stride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int32("indices", r.indexCount),
	)
}
