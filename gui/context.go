package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls overlay debug logging; SetVerbose switches it to Debug.
var guiLogLevel = new(slog.LevelVar)

var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// SetVerbose enables or disables debug logging for the overlay.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// Context holds the state for building one overlay frame.
// It is not a context.Context.
type Context struct {
	DrawList *DrawList

	style Style

	cursor      Vec2
	layoutStack []*Layout

	// Input is read-only while the frame is built.
	Input *InputState

	idStack []ID

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	// activeID is the widget holding the pointer (a slider mid-drag).
	// It persists across frames until the button is released.
	activeID ID

	FontTextureID uint32
	font          *FontAtlas

	// WantCaptureMouse is set when the pointer is over, or dragging, an overlay
	// widget. Applications should then keep pointer input away from the scene.
	WantCaptureMouse bool
}

// NewContext creates a context using the built-in font.
func NewContext() *Context {
	return &Context{
		layoutStack: make([]*Layout, 0, 4),
		idStack:     make([]ID, 0, 8),
		font:        BuiltinFont(),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the current style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	NextFrame()

	ctx.FrameCount++
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false

	// The active widget keeps the pointer through the frame the button is released in.
	if ctx.activeID != 0 && (ctx.Input == nil ||
		!ctx.Input.MouseDown(MouseButtonLeft) && !ctx.Input.MouseReleased(MouseButtonLeft)) {
		guiLogger.Debug("releasing active widget", "id", ctx.activeID)
		ctx.activeID = 0
	}
	if ctx.activeID != 0 {
		ctx.WantCaptureMouse = true
	}
}

// hovered reports whether the pointer is inside rect.
func (ctx *Context) hovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// beginDrag makes id the active widget when it is clicked this frame.
// It returns true while id holds the pointer.
func (ctx *Context) beginDrag(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	if ctx.activeID == 0 && ctx.hovered(rect) && ctx.Input.MouseClicked(MouseButtonLeft) {
		ctx.activeID = id
		ctx.WantCaptureMouse = true
		guiLogger.Debug("drag start", "id", id, "rect", rect)
	}
	return ctx.activeID == id && ctx.Input.MouseDown(MouseButtonLeft)
}

// IsActive reports whether id currently holds the pointer.
func (ctx *Context) IsActive(id ID) bool {
	return ctx.activeID != 0 && ctx.activeID == id
}

// SetCursorPos moves the layout cursor.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// CursorPos returns the layout cursor.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.cursor
}

// LineHeight returns the height of one text line.
func (ctx *Context) LineHeight() float32 {
	return float32(ctx.font.CellH) * ctx.style.FontScale
}

// MeasureText returns the size of text rendered in the built-in font.
func (ctx *Context) MeasureText(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{
		X: float32(n) * float32(ctx.font.CellW) * ctx.style.FontScale,
		Y: ctx.LineHeight(),
	}
}

// AddText draws text at an absolute position.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.font, ctx.style.FontScale)
	ctx.DrawList.SetTexture(0)
}
