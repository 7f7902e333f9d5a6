package sketch

// Geometry holds indexed triangle data in flat attribute arrays.
type Geometry struct {
	Positions []float32 // xyz per vertex
	Normals   []float32 // xyz per vertex
	UVs       []float32 // uv per vertex
	Indices   []uint32  // triangle list
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// WireframeIndices returns a line list with every triangle edge exactly once,
// in first-seen order.
func (g *Geometry) WireframeIndices() []uint32 {
	type edge struct{ a, b uint32 }
	seen := make(map[edge]struct{}, len(g.Indices))
	lines := make([]uint32, 0, len(g.Indices))

	add := func(a, b uint32) {
		if a > b {
			a, b = b, a
		}
		e := edge{a, b}
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		lines = append(lines, a, b)
	}

	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := g.Indices[i], g.Indices[i+1], g.Indices[i+2]
		add(a, b)
		add(b, c)
		add(c, a)
	}
	return lines
}

// NewPlaneGeometry builds a flat plane in the XY plane facing +Z, centered on
// the origin and subdivided into widthSegments x heightSegments quads.
// Rows run top to bottom; UV (0,1) is the top-left corner.
func NewPlaneGeometry(width, height float32, widthSegments, heightSegments int) *Geometry {
	gridX := max(widthSegments, 1)
	gridY := max(heightSegments, 1)
	gridX1, gridY1 := gridX+1, gridY+1

	segW := width / float32(gridX)
	segH := height / float32(gridY)
	halfW, halfH := width/2, height/2

	n := gridX1 * gridY1
	g := &Geometry{
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		UVs:       make([]float32, 0, n*2),
		Indices:   make([]uint32, 0, gridX*gridY*6),
	}

	for iy := 0; iy < gridY1; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix < gridX1; ix++ {
			x := float32(ix)*segW - halfW
			g.Positions = append(g.Positions, x, -y, 0)
			g.Normals = append(g.Normals, 0, 0, 1)
			g.UVs = append(g.UVs, float32(ix)/float32(gridX), 1-float32(iy)/float32(gridY))
		}
	}

	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := uint32(ix + gridX1*iy)
			b := uint32(ix + gridX1*(iy+1))
			c := uint32(ix + 1 + gridX1*(iy+1))
			d := uint32(ix + 1 + gridX1*iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}
