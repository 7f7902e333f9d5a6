package sketch

import (
	"fmt"
	"maps"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/sketch/gui"
)

// Sketch owns a camera, a scene with one shader-driven plane, orbit controls
// and a debug pane, and renders them once per frame through an Engine.
type Sketch struct {
	cfg    Config
	window Window
	engine Engine

	viewport Viewport

	camera   *PerspectiveCamera
	scene    *Scene
	controls *OrbitControls
	geometry *Geometry
	material *ShaderMaterial
	mesh     *Mesh
	pane     *Pane
	overlay  *gui.GUI
	loop     *Loop

	vertexShader   string
	fragmentShader string

	removeResize func()
}

// Option configures a Sketch.
type Option func(*Sketch)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(s *Sketch) { s.cfg = cfg }
}

// WithShaders sets the shader sources, overriding any paths in the config.
func WithShaders(vertex, fragment string) Option {
	return func(s *Sketch) { s.vertexShader, s.fragmentShader = vertex, fragment }
}

// WithOverlay draws the debug pane through r. Without it the pane keeps its
// bindings but is never drawn.
func WithOverlay(r gui.Renderer) Option {
	return func(s *Sketch) { s.overlay = gui.New(r) }
}

// New builds a sketch on win, rendering with engine. The loop is created but
// not started; call Start.
func New(win Window, engine Engine, opts ...Option) (*Sketch, error) {
	s := &Sketch{
		cfg:    DefaultConfig(),
		window: win,
		engine: engine,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if s.vertexShader == "" || s.fragmentShader == "" {
		vs, fs, err := loadConfiguredShaders(s.cfg.Shaders)
		if err != nil {
			return nil, fmt.Errorf("load shaders: %w", err)
		}
		if s.vertexShader == "" {
			s.vertexShader = vs
		}
		if s.fragmentShader == "" {
			s.fragmentShader = fs
		}
	}

	w, h := win.Size()
	s.viewport = Viewport{Width: w, Height: h}

	s.createCamera()
	s.createScene()
	s.createRenderer()
	s.createControls()
	s.createObject()
	s.createLights()
	s.createDebug()
	s.initEvents()
	s.loop = NewLoop(win, s.frame)

	sketchLogger.Info("sketch ready", "width", w, "height", h,
		"vertices", s.geometry.VertexCount(), "tone_mapping", s.cfg.Renderer.ToneMapping)
	return s, nil
}

func (s *Sketch) createCamera() {
	c := s.cfg.Camera
	s.camera = NewPerspectiveCamera(c.FOV, s.viewport.Aspect(), c.Near, c.Far)
	s.camera.Position = mgl32.Vec3{0, 0, c.Distance}
	s.camera.LookAt(mgl32.Vec3{})
}

func (s *Sketch) createScene() {
	s.scene = NewScene()
}

func (s *Sketch) createRenderer() {
	r := s.cfg.Renderer
	s.engine.SetSize(s.viewport.Width, s.viewport.Height)
	s.engine.SetToneMapping(r.ToneMapping, r.Exposure)
	s.engine.SetClearColor(r.ClearColor)
}

func (s *Sketch) createControls() {
	s.controls = NewOrbitControls(s.camera, s.window)
}

func (s *Sketch) createObject() {
	p := s.cfg.Plane
	s.geometry = NewPlaneGeometry(p.Width, p.Height, p.Segments, p.Segments)
	s.material = NewShaderMaterial(s.vertexShader, s.fragmentShader,
		FloatUniform(UniformTime, 0),
		FloatUniform(UniformTexture, 0),
		FloatUniform(UniformProgress, 0),
		Vec2Uniform(UniformMouse, mgl32.Vec2{}),
		FloatUniform(UniformMouseStrength, 0),
	)
	s.material.Wireframe = true
	s.material.Transparent = true
	s.material.Defines = maps.Clone(s.cfg.Shaders.Defines)
	s.mesh = NewMesh(s.geometry, s.material)
	s.scene.Add(s.mesh)
}

// createLights adds nothing: the shader material is unlit.
func (s *Sketch) createLights() {}

func (s *Sketch) createDebug() {
	unit := gui.Range{Min: 0, Max: 1, Step: 0.01}
	signed := gui.Range{Min: -1, Max: 1, Step: 0.01}

	s.pane = NewPane("Uniforms")
	s.pane.AddFloat("progress", &s.material.Uniform(UniformProgress).Float, unit)
	s.pane.AddFloat("mouseStrength", &s.material.Uniform(UniformMouseStrength).Float, unit)
	s.pane.AddPoint2D("mouse", &s.material.Uniform(UniformMouse).Vec2, signed, signed)
	s.pane.AddButton("reset", s.pane.Reset)
}

func (s *Sketch) initEvents() {
	s.removeResize = s.window.OnResize(s.handleResize)
}

func (s *Sketch) removeEvents() {
	if s.removeResize != nil {
		s.removeResize()
		s.removeResize = nil
	}
}

func (s *Sketch) handleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.viewport = Viewport{Width: width, Height: height}
	s.camera.Aspect = s.viewport.Aspect()
	s.camera.UpdateProjectionMatrix()
	s.engine.SetSize(width, height)
	if s.overlay != nil {
		s.overlay.Resize(width, height)
	}
	sketchLogger.Debug("resize", "width", width, "height", height)
}

func (s *Sketch) frame(f Frame) error {
	s.material.Uniform(UniformTime).Float += s.cfg.TimeStep

	captured := false
	if s.overlay != nil {
		display := gui.Vec2{X: float32(s.viewport.Width), Y: float32(s.viewport.Height)}
		ctx := s.overlay.Begin(s.window.Input(), display, 0)
		s.pane.Draw(ctx)
		captured = ctx.WantCaptureMouse
	}

	if err := s.engine.Render(s.scene, s.camera); err != nil {
		if s.overlay != nil {
			s.overlay.Discard()
		}
		return fmt.Errorf("render: %w", err)
	}
	if s.overlay != nil {
		if err := s.overlay.End(); err != nil {
			return fmt.Errorf("render overlay: %w", err)
		}
	}

	s.controls.Enabled = !captured
	s.controls.Update()
	return nil
}

// Step runs a single frame without the loop.
func (s *Sketch) Step() error {
	return s.frame(Frame{Index: s.loop.Frames()})
}

// Start runs the render loop until Stop, window close, or a frame error.
func (s *Sketch) Start() error {
	return s.loop.Start()
}

// Stop ends the render loop after the current frame.
func (s *Sketch) Stop() {
	s.loop.Stop()
}

// Destroy detaches the resize listener. It does not stop the loop or release
// GPU resources.
func (s *Sketch) Destroy() {
	s.removeEvents()
}

func (s *Sketch) Camera() *PerspectiveCamera { return s.camera }
func (s *Sketch) Scene() *Scene              { return s.scene }
func (s *Sketch) Mesh() *Mesh                { return s.mesh }
func (s *Sketch) Material() *ShaderMaterial  { return s.material }
func (s *Sketch) Controls() *OrbitControls   { return s.controls }
func (s *Sketch) Pane() *Pane                { return s.pane }
func (s *Sketch) Overlay() *gui.GUI          { return s.overlay }
func (s *Sketch) Loop() *Loop                { return s.loop }
func (s *Sketch) Viewport() Viewport         { return s.viewport }
func (s *Sketch) Config() Config             { return s.cfg }
