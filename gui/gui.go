package gui

// Renderer draws overlay draw lists. The OpenGL backend implements it.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI owns the overlay context and its renderer.
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// GUIOption configures a GUI.
type GUIOption func(*GUI)

// WithStyle sets the overlay style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// New creates an overlay drawing through renderer.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts an overlay frame. Draw widgets on the returned context, then call End.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.Reset(displaySize, deltaTime)
	return ctx
}

// End renders the frame's draw list and returns it to the pool.
func (g *GUI) End() error {
	dl := g.ctx.DrawList
	if dl == nil {
		return nil
	}
	g.ctx.DrawList = nil
	defer ReleaseDrawList(dl)
	return g.renderer.Render(dl)
}

// Discard returns the frame's draw list to the pool without rendering it.
func (g *GUI) Discard() {
	if dl := g.ctx.DrawList; dl != nil {
		g.ctx.DrawList = nil
		ReleaseDrawList(dl)
	}
}

// Context returns the overlay context. Widgets may only be drawn between Begin and End.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Resize forwards a framebuffer size change to the renderer.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
