package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sketch"
	"github.com/go-theft-auto/sketch/gui"
)

// Window is a GLFW window with a current OpenGL 4.1 core context.
// It implements sketch.Window. glfw.Init must have been called on the main thread.
type Window struct {
	win   *glfw.Window
	input *gui.InputState

	resizeListeners map[int]func(width, height int)
	nextListener    int
}

// OpenWindow creates a window per cfg and makes its context current.
func OpenWindow(cfg sketch.WindowConfig) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{
		win:             win,
		input:           gui.NewInputState(),
		resizeListeners: make(map[int]func(width, height int)),
	}

	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	win.SetKeyCallback(w.keyCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetScrollCallback(w.scrollCallback)
	win.SetCursorPosCallback(w.cursorPosCallback)

	x, y := win.GetCursorPos()
	w.input.SetMousePos(float32(x), float32(y))
	w.input.Reset()

	fw, fh := win.GetFramebufferSize()
	glLogger.Info("window opened", "width", fw, "height", fh, "samples", cfg.Samples, "vsync", cfg.VSync)
	return w, nil
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height int) {
	return w.win.GetFramebufferSize()
}

// Input returns the input state filled by the last PollEvents.
func (w *Window) Input() *gui.InputState {
	return w.input
}

// OnResize registers fn for framebuffer size changes.
func (w *Window) OnResize(fn func(width, height int)) (remove func()) {
	id := w.nextListener
	w.nextListener++
	w.resizeListeners[id] = fn
	return func() { delete(w.resizeListeners, id) }
}

// PollEvents starts a new input frame and dispatches pending GLFW events.
func (w *Window) PollEvents() {
	w.input.Reset()
	glfw.PollEvents()

	w.input.ModCtrl = w.win.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		w.win.GetKey(glfw.KeyRightControl) == glfw.Press
	w.input.ModShift = w.win.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		w.win.GetKey(glfw.KeyRightShift) == glfw.Press
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SetShouldClose asks the loop to end after the current frame.
func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

// Destroy closes the window.
func (w *Window) Destroy() {
	w.win.Destroy()
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	for _, fn := range w.resizeListeners {
		fn(width, height)
	}
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.win.SetShouldClose(true)
	}

	guiKey := glfwKeyToGUIKey(key)
	if guiKey == gui.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(guiKey, true)
	case glfw.Release:
		w.input.SetKey(guiKey, false)
	}
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}
	switch action {
	case glfw.Press:
		w.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		w.input.SetMouseButton(guiButton, false)
	}
}

func (w *Window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.input.SetMouseWheel(float32(xoff), float32(yoff))
}

// cursorPosCallback converts window coordinates to framebuffer pixels so
// pointer input matches the overlay's coordinate space on HiDPI displays.
func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	sx, sy := w.contentScale()
	w.input.SetMousePos(float32(xpos)*sx, float32(ypos)*sy)
}

func (w *Window) contentScale() (sx, sy float32) {
	ww, wh := w.win.GetSize()
	fw, fh := w.win.GetFramebufferSize()
	if ww <= 0 || wh <= 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyDown
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyF1:
		return gui.KeyF1
	default:
		return gui.KeyNone
	}
}

func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}

var _ sketch.Window = (*Window)(nil)
