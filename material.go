package sketch

import "github.com/go-gl/mathgl/mgl32"

// Uniform names the default fragment shader reads.
const (
	UniformTime          = "uTime"
	UniformTexture       = "uTexture"
	UniformProgress      = "uProgress"
	UniformMouse         = "uMouse"
	UniformMouseStrength = "uMouseStrength"
)

// UniformType is the GLSL type of a uniform value.
type UniformType int

const (
	UniformFloat UniformType = iota
	UniformVec2
)

func (t UniformType) String() string {
	switch t {
	case UniformFloat:
		return "float"
	case UniformVec2:
		return "vec2"
	default:
		return "unknown"
	}
}

// Uniform is a named shader parameter. Only the field matching Type is read.
type Uniform struct {
	Name  string
	Type  UniformType
	Float float32
	Vec2  mgl32.Vec2
}

// FloatUniform returns a float uniform.
func FloatUniform(name string, v float32) *Uniform {
	return &Uniform{Name: name, Type: UniformFloat, Float: v}
}

// Vec2Uniform returns a vec2 uniform.
func Vec2Uniform(name string, v mgl32.Vec2) *Uniform {
	return &Uniform{Name: name, Type: UniformVec2, Vec2: v}
}

// ShaderMaterial pairs user GLSL with the uniforms it reads.
// The engine prepends its own prefix (version, built-in attributes and
// uniforms, tone mapping) before compiling.
type ShaderMaterial struct {
	VertexShader   string
	FragmentShader string
	Uniforms       []*Uniform

	// Wireframe draws triangle edges as lines.
	Wireframe bool
	// Transparent enables alpha blending.
	Transparent bool

	// Defines are emitted as preprocessor definitions ahead of both stages.
	// An empty value defines the name without a value.
	Defines map[string]string
}

// NewShaderMaterial returns a material with the given sources and uniforms,
// kept in declaration order.
func NewShaderMaterial(vertex, fragment string, uniforms ...*Uniform) *ShaderMaterial {
	return &ShaderMaterial{
		VertexShader:   vertex,
		FragmentShader: fragment,
		Uniforms:       uniforms,
	}
}

// Uniform returns the uniform called name, or nil.
func (m *ShaderMaterial) Uniform(name string) *Uniform {
	for _, u := range m.Uniforms {
		if u.Name == name {
			return u
		}
	}
	return nil
}
