// Package sketch shows a wireframe plane driven by a user vertex and fragment
// shader pair, with orbit camera controls and a small pane of uniform sliders.
//
// A Sketch is built on a Window (the host surface) and an Engine (the GPU
// renderer); the OpenGL/GLFW implementations live in backend/opengl:
//
//	s, err := sketch.New(win, engine, sketch.WithOverlay(overlay))
//	if err != nil {
//	    return err
//	}
//	defer s.Destroy()
//	return s.Start()
//
// Every frame advances uTime by Config.TimeStep, draws the pane, renders the
// scene and updates the controls. The pane edits uProgress, uMouseStrength and
// uMouse in place; the next frame uploads them.
package sketch
