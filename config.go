package sketch

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("sketch: invalid config")

// Config holds the tunable constants of a sketch. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Renderer RendererConfig `yaml:"renderer"`
	Plane    PlaneConfig    `yaml:"plane"`
	Shaders  ShaderConfig   `yaml:"shaders"`

	// TimeStep is added to uTime once per frame.
	TimeStep float32 `yaml:"time_step"`
}

type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	VSync   bool   `yaml:"vsync"`
	Samples int    `yaml:"samples"`
}

type CameraConfig struct {
	FOV      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

type RendererConfig struct {
	Exposure    float32     `yaml:"exposure"`
	ClearColor  Color       `yaml:"clear_color"`
	ToneMapping ToneMapping `yaml:"tone_mapping"`
}

type PlaneConfig struct {
	Width    float32 `yaml:"width"`
	Height   float32 `yaml:"height"`
	Segments int     `yaml:"segments"`
}

// ShaderConfig names shader files on disk. Empty paths select the embedded defaults.
type ShaderConfig struct {
	Vertex   string            `yaml:"vertex"`
	Fragment string            `yaml:"fragment"`
	Defines  map[string]string `yaml:"defines,omitempty"`
}

// DefaultConfig returns the stock sketch settings.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:   800,
			Height:  600,
			Title:   "sketch",
			VSync:   true,
			Samples: 4,
		},
		Camera: CameraConfig{
			FOV:      45,
			Near:     0.1,
			Far:      1000,
			Distance: 5,
		},
		Renderer: RendererConfig{
			Exposure:    1.2,
			ClearColor:  ColorWhite,
			ToneMapping: ACESFilmicToneMapping,
		},
		Plane: PlaneConfig{
			Width:    2,
			Height:   2,
			Segments: 64,
		},
		TimeStep: 0.05,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting a sketch cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.Samples < 0:
		return fmt.Errorf("%w: samples %d", ErrInvalidConfig, c.Window.Samples)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %g", ErrInvalidConfig, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("%w: clip planes near=%g far=%g", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("%w: camera distance %g", ErrInvalidConfig, c.Camera.Distance)
	case c.Renderer.Exposure < 0:
		return fmt.Errorf("%w: exposure %g", ErrInvalidConfig, c.Renderer.Exposure)
	case c.Renderer.ToneMapping != NoToneMapping && c.Renderer.ToneMapping != ACESFilmicToneMapping:
		return fmt.Errorf("%w: tone mapping %v", ErrInvalidConfig, c.Renderer.ToneMapping)
	case c.Plane.Width <= 0 || c.Plane.Height <= 0:
		return fmt.Errorf("%w: plane size %gx%g", ErrInvalidConfig, c.Plane.Width, c.Plane.Height)
	case c.Plane.Segments <= 0:
		return fmt.Errorf("%w: plane segments %d", ErrInvalidConfig, c.Plane.Segments)
	case c.TimeStep < 0:
		return fmt.Errorf("%w: time step %g", ErrInvalidConfig, c.TimeStep)
	}
	return nil
}

// UnmarshalYAML decodes "#rrggbb" strings.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as "#rrggbb".
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes "aces" or "none".
func (t *ToneMapping) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseToneMapping(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the tone mapping by name.
func (t ToneMapping) MarshalYAML() (any, error) {
	return t.String(), nil
}
