package sketch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-theft-auto/sketch/gui"
)

// Engine is the rendering capability the sketch drives. Scene traversal,
// shader compilation and uniform upload all happen behind it.
type Engine interface {
	// SetSize resizes the output surface.
	SetSize(width, height int)
	// Size returns the output surface size.
	Size() (width, height int)
	SetClearColor(c Color)
	SetToneMapping(t ToneMapping, exposure float32)
	// Render draws scene as seen from camera into the output surface.
	Render(scene *Scene, camera *PerspectiveCamera) error
}

// FrameHost paces the render loop.
type FrameHost interface {
	// PollEvents delivers pending window events (resize, input) on the calling goroutine.
	PollEvents()
	// SwapBuffers presents the rendered frame, blocking for vsync when enabled.
	SwapBuffers()
	ShouldClose() bool
}

// Surface is the interactive area camera controls listen to.
type Surface interface {
	Size() (width, height int)
	Input() *gui.InputState
}

// Window is the host surface: it sizes the viewport, delivers input and resize
// events, and paces frames.
type Window interface {
	FrameHost
	Surface
	// OnResize registers fn for framebuffer size changes. Calling the returned
	// function removes the listener.
	OnResize(fn func(width, height int)) (remove func())
}

// ToneMapping selects the HDR-to-display transform applied in fragment shaders.
type ToneMapping int

const (
	NoToneMapping ToneMapping = iota
	ACESFilmicToneMapping
)

func (t ToneMapping) String() string {
	switch t {
	case NoToneMapping:
		return "none"
	case ACESFilmicToneMapping:
		return "aces"
	default:
		return "ToneMapping(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseToneMapping accepts "none" or "aces" (case-insensitive).
func ParseToneMapping(s string) (ToneMapping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return NoToneMapping, nil
	case "aces", "aces-filmic", "acesfilmic":
		return ACESFilmicToneMapping, nil
	default:
		return 0, fmt.Errorf("%w: unknown tone mapping %q", ErrInvalidConfig, s)
	}
}

// Color is a 24-bit RGB color, 0xRRGGBB.
type Color uint32

// ColorWhite is the default clear color.
const ColorWhite Color = 0xFFFFFF

// RGB returns the components in [0, 1].
func (c Color) RGB() (r, g, b float32) {
	return float32(c>>16&0xFF) / 255, float32(c>>8&0xFF) / 255, float32(c&0xFF) / 255
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// ParseColor parses "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: color %q is not #rrggbb", ErrInvalidConfig, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q: %v", ErrInvalidConfig, s, err)
	}
	return Color(v), nil
}

// Viewport is the framebuffer size in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns Width/Height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}
