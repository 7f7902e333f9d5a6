package glsl_test

import (
	"strings"
	"testing"

	"github.com/go-theft-auto/sketch/internal/glsl"
)

const userFragment = `varying vec2 vUv;
void main() {
    gl_FragColor = vec4(toneMapping(vec3(vUv, 1.0)), 1.0);
}
`

func TestAssembleKeepsUserSourceVerbatim(t *testing.T) {
	for _, stage := range []glsl.Stage{glsl.Vertex, glsl.Fragment} {
		t.Run(stage.String(), func(t *testing.T) {
			opts := glsl.Options{ToneMapping: glsl.ACESFilmic}
			out := glsl.Assemble(stage, userFragment, opts)

			prefix := glsl.Prefix(stage, opts)
			if !strings.HasPrefix(out, prefix) {
				t.Fatal("assembled source should start with the prefix")
			}
			body := strings.TrimSuffix(strings.TrimPrefix(out, prefix), "\x00")
			if body != userFragment {
				t.Errorf("user source changed:\n%q\nwant\n%q", body, userFragment)
			}
			if !strings.HasSuffix(out, "\x00") {
				t.Error("assembled source should be NUL-terminated")
			}
		})
	}
}

func TestPrefixStartsWithVersion(t *testing.T) {
	for _, stage := range []glsl.Stage{glsl.Vertex, glsl.Fragment} {
		p := glsl.Prefix(stage, glsl.Options{})
		if !strings.HasPrefix(p, glsl.Version+"\n") {
			t.Errorf("%v prefix should open with %q, got %q", stage, glsl.Version, p[:20])
		}
	}
}

func TestVertexPrefixDeclaresBuiltins(t *testing.T) {
	p := glsl.Prefix(glsl.Vertex, glsl.Options{})
	for _, want := range []string{
		"in vec3 position;",
		"in vec3 normal;",
		"in vec2 uv;",
		"uniform mat4 " + glsl.ProjectionMatrix + ";",
		"uniform mat4 " + glsl.ModelViewMatrix + ";",
		"uniform mat4 " + glsl.ModelMatrix + ";",
		"uniform mat4 " + glsl.ViewMatrix + ";",
		"uniform mat3 " + glsl.NormalMatrix + ";",
		"uniform vec3 " + glsl.CameraPosition + ";",
		"#define attribute in",
		"#define varying out",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("vertex prefix missing %q", want)
		}
	}
	if strings.Contains(p, "toneMapping(") {
		t.Error("vertex prefix should not define the tone-mapping helper")
	}
}

func TestFragmentPrefixToneMapping(t *testing.T) {
	aces := glsl.Prefix(glsl.Fragment, glsl.Options{ToneMapping: glsl.ACESFilmic})
	for _, want := range []string{
		"uniform float " + glsl.ToneMappingExposure + ";",
		"#define gl_FragColor pc_fragColor",
		"#define varying in",
		"RRTAndODTFit",
		"toneMappingExposure / 0.6",
		"#define TONE_MAPPING",
	} {
		if !strings.Contains(aces, want) {
			t.Errorf("ACES fragment prefix missing %q", want)
		}
	}

	linear := glsl.Prefix(glsl.Fragment, glsl.Options{})
	if strings.Contains(linear, "RRTAndODTFit") || strings.Contains(linear, "#define TONE_MAPPING") {
		t.Error("prefix without tone mapping should not include the ACES curve")
	}
	if !strings.Contains(linear, "vec3 toneMapping(vec3 color)") {
		t.Error("prefix without tone mapping should still define toneMapping")
	}
}

func TestPrefixDefinesSorted(t *testing.T) {
	p := glsl.Prefix(glsl.Vertex, glsl.Options{Defines: map[string]string{
		"USE_B": "",
		"USE_A": "2",
	}})
	a := strings.Index(p, "#define USE_A 2\n")
	b := strings.Index(p, "#define USE_B\n")
	if a < 0 || b < 0 {
		t.Fatalf("defines missing from prefix:\n%s", p)
	}
	if a > b {
		t.Error("defines should be emitted in sorted order")
	}
}
