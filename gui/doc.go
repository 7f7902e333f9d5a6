// Package gui is a small immediate-mode widget kit for on-screen debug panes.
//
// Each frame the application calls Begin, draws widgets on the returned
// Context, then calls End, which hands the accumulated DrawList to a Renderer:
//
//	ctx := ui.Begin(input, gui.Vec2{X: w, Y: h}, dt)
//	ctx.Panel("Uniforms", gui.PanelTopRight(8))(func() {
//	    ctx.SliderFloat("progress", &progress, gui.Range{Min: 0, Max: 1, Step: 0.01})
//	    ctx.PointPad("mouse", &mouse, gui.Range{Min: -1, Max: 1, Step: 0.01},
//	        gui.Range{Min: -1, Max: 1, Step: 0.01})
//	})
//	if err := ui.End(); err != nil {
//	    return err
//	}
//
// Widgets write through pointers. Values never leave their Range.
// Context.WantCaptureMouse tells the application when the pointer belongs to
// the overlay, so camera controls can ignore it.
//
// Text uses a fixed-cell atlas rasterized from golang.org/x/image's basicfont.
package gui
