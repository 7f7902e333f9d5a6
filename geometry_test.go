package sketch_test

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/sketch"
)

func TestPlaneGeometryCounts(t *testing.T) {
	g := sketch.NewPlaneGeometry(2, 2, 64, 64)

	if got := g.VertexCount(); got != 4225 {
		t.Errorf("VertexCount() = %d, want 4225", got)
	}
	if got := len(g.Indices); got != 24576 {
		t.Errorf("len(Indices) = %d, want 24576", got)
	}
	if len(g.Normals) != len(g.Positions) || len(g.UVs) != 2*g.VertexCount() {
		t.Errorf("attribute lengths: positions %d, normals %d, uvs %d",
			len(g.Positions), len(g.Normals), len(g.UVs))
	}
	// 65 rows of 64 horizontal edges, 65 columns of 64 vertical edges,
	// one diagonal per quad.
	if got := len(g.WireframeIndices()) / 2; got != 12416 {
		t.Errorf("wireframe edges = %d, want 12416", got)
	}
}

func TestPlaneGeometryLayout(t *testing.T) {
	g := sketch.NewPlaneGeometry(2, 2, 64, 64)
	last := g.VertexCount() - 1

	pos := func(i int) [3]float32 { return [3]float32(g.Positions[3*i : 3*i+3]) }
	uv := func(i int) [2]float32 { return [2]float32(g.UVs[2*i : 2*i+2]) }

	if got := pos(0); got != [3]float32{-1, 1, 0} {
		t.Errorf("first vertex = %v, want top-left (-1, 1, 0)", got)
	}
	if got := pos(last); got != [3]float32{1, -1, 0} {
		t.Errorf("last vertex = %v, want bottom-right (1, -1, 0)", got)
	}
	if got := uv(0); got != [2]float32{0, 1} {
		t.Errorf("first uv = %v, want (0, 1)", got)
	}
	if got := uv(last); got != [2]float32{1, 0} {
		t.Errorf("last uv = %v, want (1, 0)", got)
	}
	for i := 0; i < len(g.Normals); i += 3 {
		if n := [3]float32(g.Normals[i : i+3]); n != [3]float32{0, 0, 1} {
			t.Fatalf("normal %d = %v, want +Z", i/3, n)
		}
	}

	if got := g.Indices[:6]; !slices.Equal(got, []uint32{0, 65, 1, 65, 66, 1}) {
		t.Errorf("first quad = %v, want [0 65 1 65 66 1]", got)
	}
	for _, idx := range g.Indices {
		if int(idx) > last {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestPlaneGeometryClampsSegments(t *testing.T) {
	g := sketch.NewPlaneGeometry(1, 1, 0, -3)
	if g.VertexCount() != 4 || len(g.Indices) != 6 {
		t.Errorf("got %d vertices and %d indices, want a single quad", g.VertexCount(), len(g.Indices))
	}
}

func TestWireframeIndicesDeduplicatesEdges(t *testing.T) {
	g := sketch.NewPlaneGeometry(1, 1, 1, 1)

	got := g.WireframeIndices()
	want := []uint32{0, 2, 1, 2, 0, 1, 2, 3, 1, 3}
	if !slices.Equal(got, want) {
		t.Errorf("WireframeIndices() = %v, want %v", got, want)
	}
}

func TestWireframeIndicesEmpty(t *testing.T) {
	var g sketch.Geometry
	if got := g.WireframeIndices(); len(got) != 0 {
		t.Errorf("WireframeIndices() on empty geometry = %v", got)
	}
}
