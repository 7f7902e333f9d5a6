package sketch_test

import (
	"github.com/go-theft-auto/sketch"
	"github.com/go-theft-auto/sketch/gui"
)

// fakeWindow is an in-memory sketch.Window. Tests drive resize and input directly.
type fakeWindow struct {
	width, height int
	input         *gui.InputState

	listeners map[int]func(width, height int)
	nextID    int

	polls, swaps int
	closeAfter   int // ShouldClose turns true after this many swaps; 0 never
	onPoll       func()
}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{
		width:     width,
		height:    height,
		input:     gui.NewInputState(),
		listeners: make(map[int]func(width, height int)),
	}
}

func (w *fakeWindow) Size() (int, int) { return w.width, w.height }

func (w *fakeWindow) Input() *gui.InputState { return w.input }

func (w *fakeWindow) OnResize(fn func(width, height int)) func() {
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	return func() { delete(w.listeners, id) }
}

// resize changes the window size and notifies listeners, like a framebuffer-size callback.
func (w *fakeWindow) resize(width, height int) {
	w.width, w.height = width, height
	for _, fn := range w.listeners {
		fn(width, height)
	}
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	w.input.Reset()
	if w.onPoll != nil {
		w.onPoll()
	}
}

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

func (w *fakeWindow) ShouldClose() bool {
	return w.closeAfter > 0 && w.swaps >= w.closeAfter
}

// fakeEngine records the calls a sketch makes.
type fakeEngine struct {
	width, height int
	clear         sketch.Color
	toneMapping   sketch.ToneMapping
	exposure      float32

	renders   int
	renderErr error
	lastScene *sketch.Scene
	lastCam   *sketch.PerspectiveCamera
	calls     []string
}

func (e *fakeEngine) SetSize(width, height int) {
	e.width, e.height = width, height
	e.calls = append(e.calls, "SetSize")
}

func (e *fakeEngine) Size() (int, int) { return e.width, e.height }

func (e *fakeEngine) SetClearColor(c sketch.Color) {
	e.clear = c
	e.calls = append(e.calls, "SetClearColor")
}

func (e *fakeEngine) SetToneMapping(t sketch.ToneMapping, exposure float32) {
	e.toneMapping, e.exposure = t, exposure
	e.calls = append(e.calls, "SetToneMapping")
}

func (e *fakeEngine) Render(scene *sketch.Scene, camera *sketch.PerspectiveCamera) error {
	e.renders++
	e.lastScene, e.lastCam = scene, camera
	e.calls = append(e.calls, "Render")
	return e.renderErr
}

// fakeOverlay is a gui.Renderer that draws nothing.
type fakeOverlay struct {
	renders       int
	width, height int
}

func (o *fakeOverlay) Render(dl *gui.DrawList) error {
	o.renders++
	return nil
}

func (o *fakeOverlay) FontTextureID() uint32 { return 1 }

func (o *fakeOverlay) Resize(width, height int) { o.width, o.height = width, height }
