// Package glsl assembles complete GLSL 4.10 sources from WebGL-style shader text.
//
// User shaders are written against a fixed set of built-in attributes and
// uniforms and may use GLSL ES 1.0 keywords (attribute, varying, gl_FragColor,
// texture2D). Assemble places a generated prefix before the user text, which
// is kept verbatim.
package glsl

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Version is the #version line every assembled stage starts with.
const Version = "#version 410 core"

// Stage is a shader pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Attribute locations bound by the vertex prefix.
const (
	PositionLocation = 0
	NormalLocation   = 1
	UVLocation       = 2
)

// Built-in uniform names.
const (
	ProjectionMatrix    = "projectionMatrix"
	ModelViewMatrix     = "modelViewMatrix"
	ModelMatrix         = "modelMatrix"
	ViewMatrix          = "viewMatrix"
	NormalMatrix        = "normalMatrix"
	CameraPosition      = "cameraPosition"
	ToneMappingExposure = "toneMappingExposure"
)

// ToneMapping selects the body of the toneMapping(vec3) helper.
type ToneMapping int

const (
	NoToneMapping ToneMapping = iota
	ACESFilmic
)

// Options controls prefix generation.
type Options struct {
	ToneMapping ToneMapping
	// Defines are emitted as "#define NAME VALUE" in sorted order after the built-ins.
	Defines map[string]string
}

const vertexBuiltins = `uniform mat4 modelMatrix;
uniform mat4 modelViewMatrix;
uniform mat4 projectionMatrix;
uniform mat4 viewMatrix;
uniform mat3 normalMatrix;
uniform vec3 cameraPosition;

layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 uv;

#define attribute in
#define varying out
#define texture2D texture
`

const fragmentBuiltins = `uniform mat4 viewMatrix;
uniform vec3 cameraPosition;
uniform float toneMappingExposure;

#define varying in
layout(location = 0) out highp vec4 pc_fragColor;
#define gl_FragColor pc_fragColor
#define gl_FragDepthEXT gl_FragDepth
#define texture2D texture
#define textureCube texture
`

const linearToneMapping = `vec3 toneMapping(vec3 color) {
    return color;
}
`

// acesFilmicToneMapping is the RRT+ODT fit of the ACES filmic curve with the
// sRGB to AP1 input and AP1 to sRGB output matrices.
const acesFilmicToneMapping = `vec3 RRTAndODTFit(vec3 v) {
    vec3 a = v * (v + 0.0245786) - 0.000090537;
    vec3 b = v * (0.983729 * v + 0.4329510) + 0.238081;
    return a / b;
}

vec3 toneMapping(vec3 color) {
    const mat3 ACESInputMat = mat3(
        vec3(0.59719, 0.07600, 0.02840),
        vec3(0.35458, 0.90834, 0.13383),
        vec3(0.04823, 0.01566, 0.83777)
    );
    const mat3 ACESOutputMat = mat3(
        vec3( 1.60475, -0.10208, -0.00327),
        vec3(-0.53108,  1.10813, -0.07276),
        vec3(-0.07367, -0.00605,  1.07602)
    );
    color *= toneMappingExposure / 0.6;
    color = ACESInputMat * color;
    color = RRTAndODTFit(color);
    color = ACESOutputMat * color;
    return clamp(color, 0.0, 1.0);
}
`

// Prefix returns the generated text placed before user source for stage.
func Prefix(stage Stage, opts Options) string {
	var b strings.Builder
	b.WriteString(Version)
	b.WriteString("\n\nprecision highp float;\nprecision highp int;\n\n")

	switch stage {
	case Vertex:
		b.WriteString(vertexBuiltins)
	case Fragment:
		b.WriteString(fragmentBuiltins)
	}

	writeDefines(&b, stage, opts)

	if stage == Fragment {
		b.WriteByte('\n')
		switch opts.ToneMapping {
		case ACESFilmic:
			b.WriteString(acesFilmicToneMapping)
		default:
			b.WriteString(linearToneMapping)
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func writeDefines(b *strings.Builder, stage Stage, opts Options) {
	switch stage {
	case Vertex:
		b.WriteString("#define SHADER_TYPE_VERTEX\n")
	case Fragment:
		b.WriteString("#define SHADER_TYPE_FRAGMENT\n")
	}
	if opts.ToneMapping == ACESFilmic {
		b.WriteString("#define TONE_MAPPING\n")
	}
	for _, name := range slices.Sorted(maps.Keys(opts.Defines)) {
		if v := opts.Defines[name]; v != "" {
			fmt.Fprintf(b, "#define %s %s\n", name, v)
		} else {
			fmt.Fprintf(b, "#define %s\n", name)
		}
	}
}

// Assemble returns the prefix for stage followed by source.
// A trailing NUL is appended for the GL C API.
func Assemble(stage Stage, source string, opts Options) string {
	return Prefix(stage, opts) + source + "\x00"
}
