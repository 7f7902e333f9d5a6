package gui

// Layout tracks a vertical stack of widgets inside a panel.
type Layout struct {
	StartX, StartY float32
	Width          float32 // Available width for widgets
	Gap            float32

	MaxWidth, MaxHeight float32 // Content size so far
	ItemCount           int
}

func (ctx *Context) pushLayout(width, gap float32) *Layout {
	l := &Layout{
		StartX: ctx.cursor.X,
		StartY: ctx.cursor.Y,
		Width:  width,
		Gap:    gap,
	}
	ctx.layoutStack = append(ctx.layoutStack, l)
	return l
}

// popLayout removes the innermost layout and returns its content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	l := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	return Rect{X: l.StartX, Y: l.StartY, W: l.MaxWidth, H: l.MaxHeight}
}

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

// AvailableWidth is the width widgets may fill in the current layout.
func (ctx *Context) AvailableWidth() float32 {
	if l := ctx.currentLayout(); l != nil && l.Width > 0 {
		return l.Width
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

// ItemPos applies the layout gap and returns where the next widget starts.
func (ctx *Context) ItemPos() Vec2 {
	if l := ctx.currentLayout(); l != nil && l.ItemCount > 0 {
		gap := l.Gap
		if gap == 0 {
			gap = ctx.style.ItemSpacing
		}
		ctx.cursor.Y += gap
	}
	return ctx.cursor
}

// AdvanceCursor moves below a widget of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	l := ctx.currentLayout()
	if l == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}
	ctx.cursor.Y += size.Y
	l.MaxWidth = maxf(l.MaxWidth, size.X)
	l.MaxHeight = ctx.cursor.Y - l.StartY
	l.ItemCount++
}

// Text draws a line of text.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// Separator draws a thin horizontal rule across the layout.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.AvailableWidth()
	ctx.DrawList.AddRect(pos.X, pos.Y+2, w, 1, ctx.style.PanelBorderColor)
	ctx.AdvanceCursor(Vec2{X: w, Y: 5})
}

// label draws a widget label in the fixed label column and returns the column width.
// Labels wider than the column are truncated.
func (ctx *Context) label(pos Vec2, text string, h float32) float32 {
	if text == "" {
		return 0
	}
	w := ctx.style.LabelWidth
	shown := TruncateText(ctx, text, w-ctx.style.ItemSpacing)
	ctx.AddText(pos.X, pos.Y+(h-ctx.LineHeight())/2, shown, ctx.style.TextMutedColor)
	return w
}
