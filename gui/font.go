package gui

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontAtlas is a single-channel glyph sheet laid out as a fixed grid of cells.
// Backends upload Image as an R8 texture; DrawList.AddText reads UVs from it.
type FontAtlas struct {
	Image        *image.Alpha
	CellW, CellH int
	Cols         int
	First, Last  rune
}

var (
	builtinOnce  sync.Once
	builtinAtlas *FontAtlas
)

// BuiltinFont returns the printable-ASCII atlas rasterized from basicfont.Face7x13.
func BuiltinFont() *FontAtlas {
	builtinOnce.Do(func() {
		builtinAtlas = newFontAtlas(basicfont.Face7x13, ' ', '~', 16)
	})
	return builtinAtlas
}

func newFontAtlas(face *basicfont.Face, first, last rune, cols int) *FontAtlas {
	cellW, cellH := face.Advance, face.Height
	count := int(last-first) + 1
	rows := (count + cols - 1) / cols

	atlas := &FontAtlas{
		Image: image.NewAlpha(image.Rect(0, 0, cols*cellW, rows*cellH)),
		CellW: cellW,
		CellH: cellH,
		Cols:  cols,
		First: first,
		Last:  last,
	}

	for r := first; r <= last; r++ {
		idx := int(r - first)
		origin := image.Pt((idx%cols)*cellW, (idx/cols)*cellH)

		dot := fixed.P(origin.X, origin.Y+face.Ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		draw.Draw(atlas.Image, dr, mask, maskp, draw.Src)
	}
	return atlas
}

// UV returns the texture coordinates of r's cell. Runes outside the atlas map to '?'.
func (a *FontAtlas) UV(r rune) (u0, v0, u1, v1 float32) {
	if r < a.First || r > a.Last {
		r = '?'
	}
	idx := int(r - a.First)
	b := a.Image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	x := float32((idx % a.Cols) * a.CellW)
	y := float32((idx / a.Cols) * a.CellH)
	return x / w, y / h, (x + float32(a.CellW)) / w, (y + float32(a.CellH)) / h
}
