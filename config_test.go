package sketch_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/sketch"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := sketch.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Plane.Segments != 64 || cfg.TimeStep != 0.05 || cfg.Renderer.Exposure != 1.2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1024
  title: waves
renderer:
  clear_color: "#101820"
  tone_mapping: none
plane:
  segments: 32
time_step: 0.01
`)

	cfg, err := sketch.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Title != "waves" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Height != 600 || !cfg.Window.VSync {
		t.Errorf("unset window keys should keep defaults, got %+v", cfg.Window)
	}
	if cfg.Renderer.ClearColor != 0x101820 {
		t.Errorf("clear color = %v, want #101820", cfg.Renderer.ClearColor)
	}
	if cfg.Renderer.ToneMapping != sketch.NoToneMapping {
		t.Errorf("tone mapping = %v, want none", cfg.Renderer.ToneMapping)
	}
	if cfg.Renderer.Exposure != 1.2 {
		t.Errorf("exposure = %v, want default 1.2", cfg.Renderer.Exposure)
	}
	if cfg.Plane.Segments != 32 || cfg.Plane.Width != 2 {
		t.Errorf("plane = %+v", cfg.Plane)
	}
	if cfg.TimeStep != 0.01 {
		t.Errorf("time step = %v, want 0.01", cfg.TimeStep)
	}
}

func TestLoadConfigShaderDefines(t *testing.T) {
	path := writeConfig(t, `
shaders:
  defines:
    WAVES: "3"
    USE_MOUSE: ""
`)

	cfg, err := sketch.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if got := cfg.Shaders.Defines; len(got) != 2 || got["WAVES"] != "3" || got["USE_MOUSE"] != "" {
		t.Errorf("defines = %v, want WAVES=3 and USE_MOUSE", got)
	}
	if cfg.Shaders.Vertex != "" {
		t.Errorf("vertex path = %q, want embedded default", cfg.Shaders.Vertex)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad color", "renderer:\n  clear_color: white\n", true},
		{"bad tone mapping", "renderer:\n  tone_mapping: reinhard\n", true},
		{"zero segments", "plane:\n  segments: 0\n", true},
		{"far before near", "camera:\n  near: 10\n  far: 1\n", true},
		{"negative exposure", "renderer:\n  exposure: -1\n", true},
		{"malformed yaml", "window: [\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sketch.LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("LoadConfig() should fail")
			}
			if got := errors.Is(err, sketch.ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalidConfig) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := sketch.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig() error = %v, want os.ErrNotExist", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sketch.Config)
	}{
		{"zero width", func(c *sketch.Config) { c.Window.Width = 0 }},
		{"negative samples", func(c *sketch.Config) { c.Window.Samples = -1 }},
		{"fov 180", func(c *sketch.Config) { c.Camera.FOV = 180 }},
		{"zero distance", func(c *sketch.Config) { c.Camera.Distance = 0 }},
		{"unknown tone mapping", func(c *sketch.Config) { c.Renderer.ToneMapping = 7 }},
		{"flat plane", func(c *sketch.Config) { c.Plane.Height = 0 }},
		{"negative time step", func(c *sketch.Config) { c.TimeStep = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sketch.DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, sketch.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigMarshalsReadableValues(t *testing.T) {
	out, err := yaml.Marshal(sketch.DefaultConfig().Renderer)
	if err != nil {
		t.Fatalf("yaml.Marshal() returned error: %v", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(out, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["clear_color"] != "#ffffff" || raw["tone_mapping"] != "aces" {
		t.Errorf("marshaled renderer = %v", raw)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    sketch.Color
		wantErr bool
	}{
		{"#ffffff", sketch.ColorWhite, false},
		{"102030", 0x102030, false},
		{"0xA0B0C0", 0xa0b0c0, false},
		{" #000000 ", 0, false},
		{"#fff", 0, true},
		{"#gggggg", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := sketch.ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, sketch.ErrInvalidConfig) {
				t.Errorf("ParseColor(%q) error %v should wrap ErrInvalidConfig", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := sketch.Color(0xff8000).RGB()
	if r != 1 || !approx(g, 128.0/255.0) || b != 0 {
		t.Errorf("RGB() = %v, %v, %v", r, g, b)
	}
	if s := sketch.Color(0x0a0b0c).String(); s != "#0a0b0c" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseToneMapping(t *testing.T) {
	for in, want := range map[string]sketch.ToneMapping{
		"aces":        sketch.ACESFilmicToneMapping,
		"ACES":        sketch.ACESFilmicToneMapping,
		"aces-filmic": sketch.ACESFilmicToneMapping,
		"none":        sketch.NoToneMapping,
		"":            sketch.NoToneMapping,
	} {
		got, err := sketch.ParseToneMapping(in)
		if err != nil || got != want {
			t.Errorf("ParseToneMapping(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := sketch.ParseToneMapping("filmic"); !errors.Is(err, sketch.ErrInvalidConfig) {
		t.Errorf("ParseToneMapping(filmic) error = %v, want ErrInvalidConfig", err)
	}
}

func TestViewportAspect(t *testing.T) {
	if got := (sketch.Viewport{Width: 1920, Height: 1080}).Aspect(); !approx(got, 16.0/9.0) {
		t.Errorf("Aspect() = %v, want 16/9", got)
	}
	if got := (sketch.Viewport{Width: 100}).Aspect(); got != 1 {
		t.Errorf("Aspect() of a zero-height viewport = %v, want 1", got)
	}
}
