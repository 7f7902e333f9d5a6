package sketch

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/sketch/gui"
)

// Binding connects a pane control to a value owned elsewhere.
type Binding interface {
	Label() string
	// Reset restores the value the binding was created with.
	Reset()
	draw(ctx *gui.Context) bool
}

// FloatBinding edits a float32 within a range.
type FloatBinding struct {
	label   string
	value   *float32
	initial float32
	rng     gui.Range
}

func (b *FloatBinding) Label() string { return b.label }

// Range returns the bounds and step of the binding.
func (b *FloatBinding) Range() gui.Range { return b.rng }

// Value returns the bound value.
func (b *FloatBinding) Value() float32 { return *b.value }

// Set writes v snapped to the step and clamped to the range, and returns what was stored.
func (b *FloatBinding) Set(v float32) float32 {
	*b.value = b.rng.Apply(v)
	return *b.value
}

func (b *FloatBinding) Reset() { b.Set(b.initial) }

func (b *FloatBinding) draw(ctx *gui.Context) bool {
	return ctx.SliderFloat(b.label, b.value, b.rng)
}

// PointBinding edits a 2D point with one range per axis.
type PointBinding struct {
	label   string
	value   *mgl32.Vec2
	initial mgl32.Vec2
	x, y    gui.Range
}

func (b *PointBinding) Label() string { return b.label }

// Ranges returns the x and y bounds.
func (b *PointBinding) Ranges() (x, y gui.Range) { return b.x, b.y }

// Value returns the bound point.
func (b *PointBinding) Value() mgl32.Vec2 { return *b.value }

// Set writes (x, y) with each component snapped and clamped, and returns what was stored.
func (b *PointBinding) Set(x, y float32) mgl32.Vec2 {
	*b.value = mgl32.Vec2{b.x.Apply(x), b.y.Apply(y)}
	return *b.value
}

func (b *PointBinding) Reset() { b.Set(b.initial.X(), b.initial.Y()) }

func (b *PointBinding) draw(ctx *gui.Context) bool {
	return ctx.PointPad(b.label, (*[2]float32)(b.value), b.x, b.y)
}

// ButtonBinding runs an action when its button is clicked. It holds no value.
type ButtonBinding struct {
	label  string
	action func()
}

func (b *ButtonBinding) Label() string { return b.label }

func (b *ButtonBinding) Reset() {}

// Press runs the action as if the button were clicked.
func (b *ButtonBinding) Press() {
	if b.action != nil {
		b.action()
	}
}

func (b *ButtonBinding) draw(ctx *gui.Context) bool {
	clicked := ctx.Button(b.label)
	if clicked {
		b.Press()
	}
	return clicked
}

// Pane is a collapsible debug panel pinned to the top-right corner.
// F1 shows and hides it.
type Pane struct {
	Title     string
	Visible   bool
	Collapsed bool

	// OnChange, when set, is called with the label of each binding edited through the UI.
	OnChange func(label string)

	bindings []Binding
}

// NewPane returns a visible, expanded pane.
func NewPane(title string) *Pane {
	return &Pane{Title: title, Visible: true}
}

// AddFloat binds value to a slider. The current value is brought into range.
func (p *Pane) AddFloat(label string, value *float32, rng gui.Range) *FloatBinding {
	b := &FloatBinding{label: label, value: value, rng: rng}
	b.initial = b.Set(*value)
	p.bindings = append(p.bindings, b)
	return b
}

// AddPoint2D binds value to a point pad. The current value is brought into range.
func (p *Pane) AddPoint2D(label string, value *mgl32.Vec2, x, y gui.Range) *PointBinding {
	b := &PointBinding{label: label, value: value, x: x, y: y}
	b.initial = b.Set(value.X(), value.Y())
	p.bindings = append(p.bindings, b)
	return b
}

// AddButton appends a button that calls action when clicked.
func (p *Pane) AddButton(label string, action func()) *ButtonBinding {
	b := &ButtonBinding{label: label, action: action}
	p.bindings = append(p.bindings, b)
	return b
}

// Reset restores every binding to its initial value.
func (p *Pane) Reset() {
	for _, b := range p.bindings {
		b.Reset()
	}
}

// Bindings returns the bindings in insertion order.
func (p *Pane) Bindings() []Binding {
	return p.bindings
}

// Binding returns the binding with the given label, or nil.
func (p *Pane) Binding(label string) Binding {
	for _, b := range p.bindings {
		if b.Label() == label {
			return b
		}
	}
	return nil
}

// Draw lays out the pane on ctx and reports whether any binding changed.
func (p *Pane) Draw(ctx *gui.Context) bool {
	if ctx.Input != nil && ctx.Input.KeyPressed(gui.KeyF1) {
		p.Visible = !p.Visible
	}
	if !p.Visible {
		return false
	}

	changed := false
	ctx.Panel(p.Title, gui.PanelTopRight(8), gui.PanelCollapsible(&p.Collapsed))(func() {
		for _, b := range p.bindings {
			if b.draw(ctx) {
				changed = true
				if p.OnChange != nil {
					p.OnChange(b.Label())
				}
			}
		}
	})
	return changed
}
