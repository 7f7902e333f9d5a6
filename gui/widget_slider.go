package gui

import "fmt"

// SliderState is the per-slider drag anchor, used for Shift fine-tuning.
type SliderState struct {
	DragStartX     float32
	DragStartValue float32
}

var sliderStore = NewFrameStore[SliderState]()

// fineDragScale slows pointer drags while Shift is held.
const fineDragScale = 0.1

// SliderFloat draws a labelled horizontal slider bound to value.
// Every edit is passed through rng.Apply, so *value stays on the step grid and
// inside [rng.Min, rng.Max]. Returns true if the value changed this frame.
//
//	if ctx.SliderFloat("progress", &progress, gui.Range{Min: 0, Max: 1, Step: 0.01}) {
//	    ...
//	}
func (ctx *Context) SliderFloat(label string, value *float32, rng Range) bool {
	pos := ctx.ItemPos()
	id := ctx.GetID(label)
	state := sliderStore.Get(id, SliderState{})

	h := ctx.LineHeight() + 4
	labelW := ctx.label(pos, label, h)

	valueW := ctx.MeasureText("-0.00").X + ctx.style.ItemSpacing
	trackX := pos.X + labelW
	trackW := ctx.AvailableWidth() - labelW - valueW
	if trackW < 40 {
		trackW = 40
	}
	const grabW = float32(8)
	rect := Rect{X: trackX, Y: pos.Y, W: trackW, H: h}

	hovered := ctx.hovered(rect)
	changed := false
	set := func(v float32) {
		v = rng.Apply(v)
		if v != *value {
			*value = v
			changed = true
		}
	}

	if ctx.Input != nil {
		wasActive := ctx.IsActive(id)
		if ctx.beginDrag(id, rect) {
			if !wasActive {
				state.DragStartX = ctx.Input.MouseX
				state.DragStartValue = *value
			}
			if ctx.Input.ModShift {
				dx := (ctx.Input.MouseX - state.DragStartX) / (trackW - grabW)
				set(state.DragStartValue + dx*(rng.Max-rng.Min)*fineDragScale)
			} else {
				set(rng.Lerp((ctx.Input.MouseX - trackX - grabW/2) / (trackW - grabW)))
			}
		}

		if hovered && ctx.Input.MouseWheelY != 0 {
			set(*value + ctx.Input.MouseWheelY*rng.increment())
		}
		if hovered && ctx.Input.KeyPressed(KeyLeft) {
			set(*value - rng.increment())
		}
		if hovered && ctx.Input.KeyPressed(KeyRight) {
			set(*value + rng.increment())
		}
	}

	ratio := rng.Ratio(*value)
	trackH := h * 0.4
	trackY := pos.Y + (h-trackH)/2
	ctx.DrawList.AddRect(trackX, trackY, trackW, trackH, ctx.style.SliderTrackColor)
	ctx.DrawList.AddRect(trackX, trackY, ratio*trackW, trackH, ctx.style.SliderFillColor)

	grabColor := ctx.style.SliderGrabColor
	switch {
	case ctx.IsActive(id):
		grabColor = ctx.style.SliderGrabActive
	case hovered:
		grabColor = ctx.style.SliderGrabHovered
	}
	ctx.DrawList.AddRect(trackX+ratio*(trackW-grabW), pos.Y, grabW, h, grabColor)

	valueText := fmt.Sprintf("%.2f", *value)
	ctx.AddText(trackX+trackW+ctx.style.ItemSpacing, pos.Y+(h-ctx.LineHeight())/2, valueText, ctx.style.TextColor)

	ctx.AdvanceCursor(Vec2{X: labelW + trackW + valueW, Y: h})
	return changed
}
