package sketch

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/go-theft-auto/sketch/assets"
)

// LoadShaders reads a vertex and a fragment shader from fsys as opaque text.
func LoadShaders(fsys fs.FS, vertexPath, fragmentPath string) (vertex, fragment string, err error) {
	vs, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("read vertex shader: %w", err)
	}
	fsrc, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("read fragment shader: %w", err)
	}
	return string(vs), string(fsrc), nil
}

// DefaultShaders returns the embedded shader pair.
func DefaultShaders() (vertex, fragment string, err error) {
	return LoadShaders(assets.Shaders, assets.VertexShaderPath, assets.FragmentShaderPath)
}

// loadConfiguredShaders reads the files named in cfg, falling back to the
// embedded source for any empty path.
func loadConfiguredShaders(cfg ShaderConfig) (vertex, fragment string, err error) {
	vertex, fragment, err = DefaultShaders()
	if err != nil {
		return "", "", err
	}
	if cfg.Vertex != "" {
		b, err := os.ReadFile(cfg.Vertex)
		if err != nil {
			return "", "", fmt.Errorf("read vertex shader: %w", err)
		}
		vertex = string(b)
	}
	if cfg.Fragment != "" {
		b, err := os.ReadFile(cfg.Fragment)
		if err != nil {
			return "", "", fmt.Errorf("read fragment shader: %w", err)
		}
		fragment = string(b)
	}
	return vertex, fragment, nil
}
