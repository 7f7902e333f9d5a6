// Command sketch opens a window and previews a pair of GLSL shaders on a
// subdivided plane with orbit controls and a uniform debug pane (F1).
//
//	go run ./cmd/sketch
//	go run ./cmd/sketch -vertex my.vert -fragment my.frag
//	go run ./cmd/sketch -config sketch.yaml -v
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sketch"
	"github.com/go-theft-auto/sketch/backend/opengl"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	vertexPath := flag.String("vertex", "", "vertex shader file (default: embedded)")
	fragmentPath := flag.String("fragment", "", "fragment shader file (default: embedded)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	sketch.SetVerbose(*verbose)
	opengl.SetVerbose(*verbose)

	cfg := sketch.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sketch.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *vertexPath != "" {
		cfg.Shaders.Vertex = *vertexPath
	}
	if *fragmentPath != "" {
		cfg.Shaders.Fragment = *fragmentPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.OpenWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	w, h := window.Size()
	engine := opengl.NewEngine(w, h)
	defer engine.Delete()

	overlay, err := opengl.NewOverlay(w, h)
	if err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	defer overlay.Delete()

	s, err := sketch.New(window, engine, sketch.WithConfig(cfg), sketch.WithOverlay(overlay))
	if err != nil {
		return err
	}
	defer s.Destroy()

	slog.Info("running", "shaders", shaderSource(cfg.Shaders), "help", "drag to orbit, wheel to zoom, right drag to pan, F1 toggles the pane")
	return s.Start()
}

func shaderSource(c sketch.ShaderConfig) string {
	if c.Vertex == "" && c.Fragment == "" {
		return "embedded"
	}
	return fmt.Sprintf("vertex=%q fragment=%q", c.Vertex, c.Fragment)
}
