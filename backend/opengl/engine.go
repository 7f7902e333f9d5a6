package opengl

import (
	"errors"
	"fmt"
	"maps"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/sketch"
	"github.com/go-theft-auto/sketch/internal/glsl"
)

var errNilScene = errors.New("opengl: nil scene or camera")

// Engine renders sketch scenes with OpenGL 4.1. It implements sketch.Engine.
// All methods must be called on the thread that owns the GL context.
type Engine struct {
	width, height int

	clearColor  sketch.Color
	toneMapping sketch.ToneMapping
	exposure    float32

	buffers  map[*sketch.Geometry]*meshBuffers
	programs map[*sketch.ShaderMaterial]*materialProgram
}

// meshBuffers is the GPU copy of a Geometry. Line indices are created on first
// wireframe draw.
type meshBuffers struct {
	vao       uint32
	vbos      [3]uint32
	ebo       uint32
	lineEBO   uint32
	triCount  int32
	lineCount int32
}

type materialProgram struct {
	id uint32

	vertexSource   string
	fragmentSource string
	toneMapping    sketch.ToneMapping
	defines        map[string]string

	builtins map[string]int32
	uniforms map[string]int32
}

var builtinUniforms = []string{
	glsl.ProjectionMatrix,
	glsl.ModelViewMatrix,
	glsl.ModelMatrix,
	glsl.ViewMatrix,
	glsl.NormalMatrix,
	glsl.CameraPosition,
	glsl.ToneMappingExposure,
}

// NewEngine creates an engine for a width x height framebuffer. A GL context
// must be current.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		clearColor: sketch.ColorWhite,
		exposure:   1,
		buffers:    make(map[*sketch.Geometry]*meshBuffers),
		programs:   make(map[*sketch.ShaderMaterial]*materialProgram),
	}
	glLogger.Info("opengl engine",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return e
}

func (e *Engine) SetSize(width, height int) {
	e.width, e.height = width, height
}

func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}

func (e *Engine) SetClearColor(c sketch.Color) {
	e.clearColor = c
}

// SetToneMapping selects the tone-mapping curve. Programs are rebuilt on the
// next render when the curve changes.
func (e *Engine) SetToneMapping(t sketch.ToneMapping, exposure float32) {
	e.toneMapping = t
	e.exposure = exposure
}

// Render clears the framebuffer and draws every visible mesh in scene order.
func (e *Engine) Render(scene *sketch.Scene, camera *sketch.PerspectiveCamera) error {
	if scene == nil || camera == nil {
		return errNilScene
	}

	gl.Viewport(0, 0, int32(e.width), int32(e.height))
	r, g, b := e.clearColor.RGB()
	gl.ClearColor(r, g, b, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := camera.ViewMatrix()
	proj := camera.ProjectionMatrix()

	for _, m := range scene.Children() {
		if !m.Visible || m.Geometry == nil || m.Material == nil {
			continue
		}
		if err := e.drawMesh(m, view, proj, camera.Position); err != nil {
			return err
		}
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	return nil
}

func (e *Engine) drawMesh(m *sketch.Mesh, view, proj mgl32.Mat4, eye mgl32.Vec3) error {
	p, err := e.program(m.Material)
	if err != nil {
		return err
	}
	buf := e.meshBuffers(m.Geometry)

	gl.UseProgram(p.id)

	modelView := view.Mul4(m.Model)
	normal := modelView.Mat3().Inv().Transpose()

	setMat4(p.builtins[glsl.ProjectionMatrix], proj)
	setMat4(p.builtins[glsl.ModelViewMatrix], modelView)
	setMat4(p.builtins[glsl.ModelMatrix], m.Model)
	setMat4(p.builtins[glsl.ViewMatrix], view)
	if loc := p.builtins[glsl.NormalMatrix]; loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, &normal[0])
	}
	if loc := p.builtins[glsl.CameraPosition]; loc >= 0 {
		gl.Uniform3f(loc, eye.X(), eye.Y(), eye.Z())
	}
	if loc := p.builtins[glsl.ToneMappingExposure]; loc >= 0 {
		gl.Uniform1f(loc, e.exposure)
	}

	for _, u := range m.Material.Uniforms {
		loc, ok := p.uniforms[u.Name]
		if !ok {
			loc = uniformLocation(p.id, u.Name)
			p.uniforms[u.Name] = loc
		}
		if loc < 0 {
			continue
		}
		switch u.Type {
		case sketch.UniformFloat:
			gl.Uniform1f(loc, u.Float)
		case sketch.UniformVec2:
			gl.Uniform2f(loc, u.Vec2.X(), u.Vec2.Y())
		}
	}

	if m.Material.Transparent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	gl.BindVertexArray(buf.vao)
	if m.Material.Wireframe {
		if buf.lineEBO == 0 {
			lines := m.Geometry.WireframeIndices()
			gl.GenBuffers(1, &buf.lineEBO)
			gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.lineEBO)
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(lines)*4, gl.Ptr(lines), gl.STATIC_DRAW)
			buf.lineCount = int32(len(lines))
		}
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.lineEBO)
		gl.DrawElementsWithOffset(gl.LINES, buf.lineCount, gl.UNSIGNED_INT, 0)
	} else {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
		gl.DrawElementsWithOffset(gl.TRIANGLES, buf.triCount, gl.UNSIGNED_INT, 0)
	}
	return nil
}

func setMat4(loc int32, m mgl32.Mat4) {
	if loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// program returns the linked program for mat, building it on first use and
// again whenever the material text or the tone-mapping curve changes.
func (e *Engine) program(mat *sketch.ShaderMaterial) (*materialProgram, error) {
	if p, ok := e.programs[mat]; ok {
		if p.vertexSource == mat.VertexShader && p.fragmentSource == mat.FragmentShader &&
			p.toneMapping == e.toneMapping && maps.Equal(p.defines, mat.Defines) {
			return p, nil
		}
		gl.DeleteProgram(p.id)
		delete(e.programs, mat)
	}

	opts := glsl.Options{Defines: mat.Defines}
	if e.toneMapping == sketch.ACESFilmicToneMapping {
		opts.ToneMapping = glsl.ACESFilmic
	}
	id, err := createShaderProgram(
		glsl.Assemble(glsl.Vertex, mat.VertexShader, opts),
		glsl.Assemble(glsl.Fragment, mat.FragmentShader, opts),
	)
	if err != nil {
		return nil, fmt.Errorf("build material program: %w", err)
	}

	p := &materialProgram{
		id:             id,
		vertexSource:   mat.VertexShader,
		fragmentSource: mat.FragmentShader,
		toneMapping:    e.toneMapping,
		defines:        maps.Clone(mat.Defines),
		builtins:       make(map[string]int32, len(builtinUniforms)),
		uniforms:       make(map[string]int32, len(mat.Uniforms)),
	}
	for _, name := range builtinUniforms {
		p.builtins[name] = uniformLocation(id, name)
	}
	e.programs[mat] = p
	glLogger.Debug("material program linked", "program", id, "uniforms", len(mat.Uniforms),
		"tone_mapping", e.toneMapping)
	return p, nil
}

func (e *Engine) meshBuffers(g *sketch.Geometry) *meshBuffers {
	if buf, ok := e.buffers[g]; ok {
		return buf
	}

	buf := &meshBuffers{triCount: int32(len(g.Indices))}
	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(3, &buf.vbos[0])
	attribs := []struct {
		location uint32
		size     int32
		data     []float32
	}{
		{glsl.PositionLocation, 3, g.Positions},
		{glsl.NormalLocation, 3, g.Normals},
		{glsl.UVLocation, 2, g.UVs},
	}
	for i, a := range attribs {
		gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbos[i])
		if len(a.data) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(a.data)*4, gl.Ptr(a.data), gl.STATIC_DRAW)
		}
		gl.VertexAttribPointerWithOffset(a.location, a.size, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(a.location)
	}

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	if len(g.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	e.buffers[g] = buf
	glLogger.Debug("geometry uploaded", "vertices", g.VertexCount(), "indices", len(g.Indices))
	return buf
}

// Delete releases every buffer and program the engine created.
func (e *Engine) Delete() {
	for g, buf := range e.buffers {
		gl.DeleteBuffers(3, &buf.vbos[0])
		gl.DeleteBuffers(1, &buf.ebo)
		if buf.lineEBO != 0 {
			gl.DeleteBuffers(1, &buf.lineEBO)
		}
		gl.DeleteVertexArrays(1, &buf.vao)
		delete(e.buffers, g)
	}
	for mat, p := range e.programs {
		gl.DeleteProgram(p.id)
		delete(e.programs, mat)
	}
}

var _ sketch.Engine = (*Engine)(nil)
