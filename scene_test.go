package sketch_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/sketch"
)

func TestSceneAddRemove(t *testing.T) {
	scene := sketch.NewScene()
	a := sketch.NewMesh(&sketch.Geometry{}, &sketch.ShaderMaterial{})
	b := sketch.NewMesh(&sketch.Geometry{}, &sketch.ShaderMaterial{})

	scene.Add(a, nil, b, a)
	if got := scene.Children(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("Children() = %v, want [a b]", got)
	}
	if !a.Visible || a.Model != mgl32.Ident4() {
		t.Error("NewMesh should be visible with an identity transform")
	}
	if !scene.Remove(a) || scene.Remove(a) {
		t.Error("Remove should succeed once")
	}
	if got := scene.Children(); len(got) != 1 || got[0] != b {
		t.Errorf("Children() = %v after Remove, want [b]", got)
	}
}
