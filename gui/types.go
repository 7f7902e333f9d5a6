package gui

import "math"

// Vec2 is a 2D position or size in screen pixels.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex is one overlay vertex.
// Memory layout matches the OpenGL attribute layout used by the backend.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // RGBA packed as 0xAABBGGRR
}

// DrawCmd is a batch of indexed triangles sharing a texture and clip rect.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Colors are packed as 0xAABBGGRR so they upload as normalized RGBA bytes.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA packs 8-bit components into a color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts the components of a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Range bounds an editable value. A zero Step disables quantization.
type Range struct {
	Min, Max float32
	Step     float32
}

// Apply clamps v to [Min, Max] and snaps it to the nearest step from Min.
// NaN maps to Min.
func (r Range) Apply(v float32) float32 {
	if v != v {
		return r.Min
	}
	v = clampf(v, r.Min, r.Max)
	if r.Step > 0 {
		n := math.Round(float64(v-r.Min) / float64(r.Step))
		v = clampf(r.Min+float32(n*float64(r.Step)), r.Min, r.Max)
	}
	return v
}

// Ratio maps v into [0, 1] across the range.
func (r Range) Ratio(v float32) float32 {
	if r.Max <= r.Min {
		return 0
	}
	return clampf((v-r.Min)/(r.Max-r.Min), 0, 1)
}

// Lerp maps t in [0, 1] back into the range without snapping.
func (r Range) Lerp(t float32) float32 {
	return r.Min + clampf(t, 0, 1)*(r.Max-r.Min)
}

// increment is the keyboard/wheel nudge for the range.
func (r Range) increment() float32 {
	if r.Step > 0 {
		return r.Step
	}
	return (r.Max - r.Min) / 100
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
