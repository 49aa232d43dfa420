// Package renderer draws solids with a single flat-color shader program.
package renderer

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/polyspin/internal/engine/shader"
	"github.com/Faultbox/polyspin/internal/logger"
	"github.com/Faultbox/polyspin/internal/solid"
	"github.com/Faultbox/polyspin/pkg/math"
)

// Projection parameters.
const (
	FieldOfView = gomath.Pi / 4 // vertical, radians
	NearPlane   = 1
	FarPlane    = 10000
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// gpuMesh holds the GL objects for one solid.
type gpuMesh struct {
	vao        uint32
	positions  uint32
	colors     uint32
	ebo        uint32
	indexCount int32
}

// Renderer owns the shader program, projection and per-solid buffers.
type Renderer struct {
	config Config

	program       uint32
	locProjection int32
	locModelView  int32

	projection math.Mat4
	meshes     map[*solid.Solid]*gpuMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[*solid.Solid]*gpuMesh),
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
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	var err error
	r.program, err = shader.CompileProgram(shader.FlatVertex, shader.FlatFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locProjection = shader.MustGetUniform(r.program, "projectionMatrix")
	r.locModelView = shader.MustGetUniform(r.program, "modelViewMatrix")
	logger.Debug("shader program created", zap.Uint32("program", r.program))

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for s, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		buffers := []uint32{m.positions, m.colors, m.ebo}
		gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
		delete(r.meshes, s)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Projection returns the current projection matrix.
func (r *Renderer) Projection() math.Mat4 {
	return r.projection
}

// Resize updates the viewport and recomputes the projection for the new aspect.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection = ProjectionFor(width, height)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// ProjectionFor returns the perspective projection for a viewport size.
func ProjectionFor(width, height int) math.Mat4 {
	return math.Perspective(FieldOfView, float32(width)/float32(height), NearPlane, FarPlane)
}

// Upload creates vertex, color and index buffers for each solid.
// Solids already uploaded are skipped.
func (r *Renderer) Upload(solids ...*solid.Solid) error {
	for _, s := range solids {
		if _, ok := r.meshes[s]; ok {
			continue
		}
		m, err := uploadMesh(&s.Mesh)
		if err != nil {
			return fmt.Errorf("upload %s: %w", s.Kind, err)
		}
		r.meshes[s] = m
		logger.Debug("solid uploaded",
			zap.Stringer("kind", s.Kind),
			zap.Int("vertices", s.Mesh.VertexCount()),
			zap.Int("indices", len(s.Mesh.Indices)),
			zap.Uint32("vao", m.vao),
		)
	}
	return nil
}

func uploadMesh(mesh *solid.Mesh) (*gpuMesh, error) {
	if len(mesh.Positions) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("empty mesh")
	}
	m := &gpuMesh{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.positions)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Positions)*4, unsafe.Pointer(&mesh.Positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(shader.PositionLocation, solid.PositionSize, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(shader.PositionLocation)

	gl.GenBuffers(1, &m.colors)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.colors)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Colors)*4, unsafe.Pointer(&mesh.Colors[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(shader.ColorLocation, solid.ColorSize, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(shader.ColorLocation)

	// The element buffer binding is stored in the VAO.
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*2, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, checkError("buffer upload")
}

// Render clears the frame and draws every solid with its current transform.
func (r *Renderer) Render(solids []*solid.Solid) error {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locProjection, 1, false, r.projection.Ptr())

	for _, s := range solids {
		m, ok := r.meshes[s]
		if !ok {
			return fmt.Errorf("%s solid was never uploaded", s.Kind)
		}
		model := s.Transform
		gl.UniformMatrix4fv(r.locModelView, 1, false, model.Ptr())
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, nil)
	}
	gl.BindVertexArray(0)

	return checkError("draw")
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error 0x%04x", op, code)
	}
	return nil
}
