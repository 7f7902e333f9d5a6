package gui

const buttonPadding = 4

// Button draws a full-width button and returns true on the frame it is
// released with the pointer still over it.
func (ctx *Context) Button(label string) bool {
	pos := ctx.ItemPos()
	id := ctx.GetID(label)

	textSize := ctx.MeasureText(label)
	size := Vec2{X: ctx.AvailableWidth(), Y: textSize.Y + buttonPadding*2}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	held := ctx.beginDrag(id, rect)
	hovered := ctx.hovered(rect)

	bg := ctx.style.ButtonColor
	switch {
	case held:
		bg = ctx.style.ButtonActiveColor
	case hovered && ctx.activeID == 0:
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)

	shown := TruncateText(ctx, label, size.X-buttonPadding*2)
	textX := pos.X + (size.X-ctx.MeasureText(shown).X)/2
	ctx.AddText(textX, pos.Y+buttonPadding, shown, ctx.style.TextColor)

	clicked := ctx.Input != nil && ctx.IsActive(id) && hovered && ctx.Input.MouseReleased(MouseButtonLeft)
	ctx.AdvanceCursor(size)
	return clicked
}
