package sketch

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh binds geometry to a material with a model transform.
type Mesh struct {
	Geometry *Geometry
	Material *ShaderMaterial
	Model    mgl32.Mat4
	Visible  bool
}

// NewMesh returns a visible mesh with an identity transform.
func NewMesh(geometry *Geometry, material *ShaderMaterial) *Mesh {
	return &Mesh{
		Geometry: geometry,
		Material: material,
		Model:    mgl32.Ident4(),
		Visible:  true,
	}
}

// Scene is the flat list of meshes drawn each frame.
type Scene struct {
	children []*Mesh
}

func NewScene() *Scene {
	return &Scene{}
}

// Add appends meshes in draw order. A mesh already in the scene is not added twice.
func (s *Scene) Add(meshes ...*Mesh) {
	for _, m := range meshes {
		if m == nil || slices.Contains(s.children, m) {
			continue
		}
		s.children = append(s.children, m)
	}
}

// Remove detaches m. It reports whether m was in the scene.
func (s *Scene) Remove(m *Mesh) bool {
	i := slices.Index(s.children, m)
	if i < 0 {
		return false
	}
	s.children = slices.Delete(s.children, i, i+1)
	return true
}

// Children returns the meshes in draw order. The slice must not be modified.
func (s *Scene) Children() []*Mesh {
	return s.children
}
