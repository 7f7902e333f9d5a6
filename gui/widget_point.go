package gui

import "fmt"

// PointPad draws a 2D picker for a point, followed by one slider per axis.
// The pad maps x left to right and y bottom to top. Both components pass through
// their Range, so they stay on the step grid and inside the bounds.
// Returns true if either component changed this frame.
func (ctx *Context) PointPad(label string, point *[2]float32, xr, yr Range) bool {
	pos := ctx.ItemPos()
	id := ctx.GetID(label)

	lineH := ctx.LineHeight() + 4
	labelW := ctx.label(pos, label, lineH)

	size := ctx.AvailableWidth() - labelW
	if size > 120 {
		size = 120
	}
	pad := Rect{X: pos.X + labelW, Y: pos.Y, W: size, H: size}

	changed := false
	if ctx.beginDrag(id, pad) {
		tx := (ctx.Input.MouseX - pad.X) / pad.W
		ty := 1 - (ctx.Input.MouseY-pad.Y)/pad.H
		nx, ny := xr.Apply(xr.Lerp(tx)), yr.Apply(yr.Lerp(ty))
		if nx != point[0] || ny != point[1] {
			point[0], point[1] = nx, ny
			changed = true
		}
	}

	ctx.DrawList.AddRect(pad.X, pad.Y, pad.W, pad.H, ctx.style.PadBgColor)
	ctx.DrawList.AddRect(pad.X+pad.W/2, pad.Y, 1, pad.H, ctx.style.PadGridColor)
	ctx.DrawList.AddRect(pad.X, pad.Y+pad.H/2, pad.W, 1, ctx.style.PadGridColor)

	mx := pad.X + xr.Ratio(point[0])*pad.W
	my := pad.Y + (1-yr.Ratio(point[1]))*pad.H
	ctx.DrawList.AddRect(mx, pad.Y, 1, pad.H, ctx.style.PadMarkerColor&0x60FFFFFF)
	ctx.DrawList.AddRect(pad.X, my, pad.W, 1, ctx.style.PadMarkerColor&0x60FFFFFF)
	ctx.DrawList.AddRect(mx-3, my-3, 7, 7, ctx.style.PadMarkerColor)

	readout := fmt.Sprintf("%.2f, %.2f", point[0], point[1])
	ctx.AddText(pad.X, pad.Y+pad.H+2, readout, ctx.style.TextMutedColor)
	ctx.AdvanceCursor(Vec2{X: labelW + size, Y: size + ctx.LineHeight() + 2})

	ctx.PushID(label)
	if ctx.SliderFloat("x", &point[0], xr) {
		changed = true
	}
	if ctx.SliderFloat("y", &point[1], yr) {
		changed = true
	}
	ctx.PopID()

	return changed
}
