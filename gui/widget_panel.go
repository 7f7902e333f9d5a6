package gui

// PanelOption configures a Panel.
type PanelOption func(*panelConfig)

type panelConfig struct {
	x, y        float32
	width       float32
	anchorRight bool
	margin      float32
	collapsed   *bool
}

// PanelAt places the panel's top-left corner at (x, y).
func PanelAt(x, y float32) PanelOption {
	return func(c *panelConfig) { c.x, c.y, c.anchorRight = x, y, false }
}

// PanelTopRight pins the panel to the top-right corner, margin pixels from the edges.
func PanelTopRight(margin float32) PanelOption {
	return func(c *panelConfig) { c.anchorRight, c.margin = true, margin }
}

// PanelWidth sets the panel width.
func PanelWidth(w float32) PanelOption {
	return func(c *panelConfig) { c.width = w }
}

// PanelCollapsible lets a header click toggle *collapsed.
func PanelCollapsible(collapsed *bool) PanelOption {
	return func(c *panelConfig) { c.collapsed = collapsed }
}

// Panel draws a titled panel around contents.
//
//	ctx.Panel("Uniforms", gui.PanelTopRight(8))(func() {
//	    ctx.SliderFloat("progress", &progress, gui.Range{Max: 1, Step: 0.01})
//	})
func (ctx *Context) Panel(title string, opts ...PanelOption) func(func()) {
	return func(contents func()) {
		cfg := panelConfig{width: 280, x: ctx.cursor.X, y: ctx.cursor.Y}
		for _, opt := range opts {
			opt(&cfg)
		}

		x, y := cfg.x, cfg.y
		if cfg.anchorRight {
			x = ctx.DisplaySize.X - cfg.width - cfg.margin
			y = cfg.margin
		}
		pad := ctx.style.PanelPadding

		headerH := float32(0)
		if title != "" {
			headerH = ctx.LineHeight() + pad
		}
		header := Rect{X: x, Y: y, W: cfg.width, H: headerH}

		if cfg.collapsed != nil && ctx.Input != nil && ctx.activeID == 0 &&
			ctx.hovered(header) && ctx.Input.MouseClicked(MouseButtonLeft) {
			*cfg.collapsed = !*cfg.collapsed
		}
		collapsed := cfg.collapsed != nil && *cfg.collapsed

		ctx.PushID(title)
		contentH := float32(0)
		if !collapsed {
			ctx.cursor = Vec2{X: x + pad, Y: y + headerH + pad}
			ctx.pushLayout(cfg.width-2*pad, ctx.style.ItemSpacing)
			contents()
			bounds := ctx.popLayout()
			contentH = bounds.H + 2*pad
		}
		ctx.PopID()

		panelH := headerH + contentH
		ctx.DrawList.InsertRect(x, y, cfg.width, panelH, ctx.style.PanelColor)

		if title != "" {
			ctx.DrawList.AddRect(header.X, header.Y, header.W, header.H, ctx.style.PanelHeaderColor)
			textY := y + (headerH-ctx.LineHeight())/2
			marker := "v"
			if collapsed {
				marker = ">"
			}
			if cfg.collapsed != nil {
				ctx.AddText(x+pad, textY, marker, ctx.style.TextMutedColor)
				ctx.AddText(x+pad+ctx.MeasureText(marker+" ").X, textY, title, ctx.style.TextColor)
			} else {
				ctx.AddText(x+pad, textY, title, ctx.style.TextColor)
			}
		}
		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(x, y, cfg.width, panelH, ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if ctx.hovered(Rect{X: x, Y: y, W: cfg.width, H: panelH}) {
			ctx.WantCaptureMouse = true
		}
		ctx.cursor = Vec2{X: x, Y: y + panelH}
	}
}
