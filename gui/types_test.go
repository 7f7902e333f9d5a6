package gui

import (
	"math"
	"testing"
)

func TestRangeApply(t *testing.T) {
	unit := Range{Min: 0, Max: 1, Step: 0.01}
	signed := Range{Min: -1, Max: 1, Step: 0.01}
	free := Range{Min: -2, Max: 2}

	tests := []struct {
		name string
		rng  Range
		in   float32
		want float32
	}{
		{"inside", unit, 0.5, 0.5},
		{"snaps down", unit, 0.334, 0.33},
		{"snaps up", unit, 0.336, 0.34},
		{"clamps above", unit, 1.7, 1},
		{"clamps below", unit, -0.2, 0},
		{"signed negative", signed, -0.456, -0.46},
		{"signed clamps", signed, -3, -1},
		{"no step keeps value", free, 1.2345, 1.2345},
		{"no step clamps", free, 9, 2},
		{"huge clamps to max", unit, 1e19, 1},
		{"huge negative clamps to min", signed, -1e19, -1},
		{"positive infinity", unit, float32(math.Inf(1)), 1},
		{"negative infinity", signed, float32(math.Inf(-1)), -1},
		{"NaN maps to min", signed, float32(math.NaN()), -1},
		{"no step infinity", free, float32(math.Inf(1)), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rng.Apply(tt.in)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < tt.rng.Min || got > tt.rng.Max {
				t.Errorf("Apply(%v) = %v outside [%v, %v]", tt.in, got, tt.rng.Min, tt.rng.Max)
			}
		})
	}
}

func TestRangeRatioAndLerp(t *testing.T) {
	r := Range{Min: -1, Max: 1}
	if got := r.Ratio(0); got != 0.5 {
		t.Errorf("Ratio(0) = %v, want 0.5", got)
	}
	if got := r.Ratio(5); got != 1 {
		t.Errorf("Ratio(5) = %v, want 1", got)
	}
	if got := r.Lerp(0.25); got != -0.5 {
		t.Errorf("Lerp(0.25) = %v, want -0.5", got)
	}
	if got := r.Lerp(-1); got != -1 {
		t.Errorf("Lerp(-1) = %v, want -1", got)
	}
	if got := (Range{Min: 1, Max: 1}).Ratio(1); got != 0 {
		t.Errorf("Ratio on empty range = %v, want 0", got)
	}
}

func TestRGBARoundTrip(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	r, g, b, a := UnpackRGBA(c)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("UnpackRGBA(RGBA(10,20,30,40)) = %d,%d,%d,%d", r, g, b, a)
	}
}

func TestBuiltinFontAtlas(t *testing.T) {
	atlas := BuiltinFont()
	if atlas != BuiltinFont() {
		t.Error("BuiltinFont should return the same atlas every call")
	}
	if atlas.CellW != 7 || atlas.CellH != 13 {
		t.Errorf("cell = %dx%d, want 7x13", atlas.CellW, atlas.CellH)
	}
	b := atlas.Image.Bounds()
	if b.Dx() != atlas.Cols*atlas.CellW {
		t.Errorf("atlas width = %d, want %d", b.Dx(), atlas.Cols*atlas.CellW)
	}

	coverage := func(r rune) int {
		idx := int(r - atlas.First)
		x0 := (idx % atlas.Cols) * atlas.CellW
		y0 := (idx / atlas.Cols) * atlas.CellH
		n := 0
		for y := y0; y < y0+atlas.CellH; y++ {
			for x := x0; x < x0+atlas.CellW; x++ {
				if atlas.Image.AlphaAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	if coverage(' ') != 0 {
		t.Error("space glyph should be empty")
	}
	if coverage('A') == 0 {
		t.Error("'A' glyph should have pixels")
	}
}

func TestFontAtlasUVFallback(t *testing.T) {
	atlas := BuiltinFont()
	q0, q1, q2, q3 := atlas.UV('?')
	u0, u1, u2, u3 := atlas.UV('é')
	if q0 != u0 || q1 != u1 || q2 != u2 || q3 != u3 {
		t.Error("runes outside the atlas should map to '?'")
	}
	a0, _, a2, _ := atlas.UV('A')
	if a2 <= a0 || a2 > 1 {
		t.Errorf("UV('A') u range = [%v, %v]", a0, a2)
	}
}

func TestFrameStoreDropsUnusedEntries(t *testing.T) {
	store := NewFrameStore[int]()
	*store.Get(1, 0) = 42

	NextFrame()
	if v := store.Lookup(1); v == nil || *v != 42 {
		t.Fatalf("entry should survive one frame, got %v", v)
	}
	NextFrame()
	if store.Lookup(1) != nil {
		t.Error("entry should be dropped after a frame without Get")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestGetIDIsStableAndScoped(t *testing.T) {
	ctx := NewContext()
	a := ctx.GetID("x")
	if ctx.GetID("x") != a {
		t.Error("same label should give the same ID")
	}
	ctx.PushID("mouse")
	scoped := ctx.GetID("x")
	ctx.PopID()
	if scoped == a {
		t.Error("label inside a scope should differ from the top-level one")
	}
	if ctx.GetID("x") != a {
		t.Error("PopID should restore the outer scope")
	}
}

func TestTruncateText(t *testing.T) {
	ctx := NewContext()
	ctx.SetStyle(DefaultStyle())

	if got := TruncateText(ctx, "short", 100); got != "short" {
		t.Errorf("TruncateText kept %q, want unchanged", got)
	}
	got := TruncateText(ctx, "mouseStrengthAndMore", 70)
	if ctx.MeasureText(got).X > 70 {
		t.Errorf("TruncateText result %q is wider than 70", got)
	}
	if got[len(got)-2:] != ".." {
		t.Errorf("TruncateText result %q should end with ..", got)
	}
}
