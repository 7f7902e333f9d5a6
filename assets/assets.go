// Package assets embeds the default shader sources.
package assets

import "embed"

// Shaders holds shaders/vertex.glsl and shaders/fragment.glsl.
//
//go:embed shaders/*.glsl
var Shaders embed.FS

const (
	VertexShaderPath   = "shaders/vertex.glsl"
	FragmentShaderPath = "shaders/fragment.glsl"
)
