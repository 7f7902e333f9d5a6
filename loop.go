package sketch

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrLoopRunning is returned by Loop.Start when the loop is already running.
var ErrLoopRunning = errors.New("sketch: render loop already running")

// Frame describes the frame being produced.
type Frame struct {
	// Index counts completed frames before this one.
	Index uint64
}

// FrameFunc renders one frame. A non-nil error stops the loop.
type FrameFunc func(f Frame) error

// Loop drives a FrameFunc once per display refresh.
type Loop struct {
	host FrameHost
	step FrameFunc

	running atomic.Bool
	stop    atomic.Bool
	frames  atomic.Uint64
}

func NewLoop(host FrameHost, step FrameFunc) *Loop {
	return &Loop{host: host, step: step}
}

// Start runs the loop on the calling goroutine until Stop is called, the host
// asks to close, or a frame fails. The frame error is returned wrapped.
func (l *Loop) Start() error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)
	l.stop.Store(false)

	sketchLogger.Debug("render loop started", "frames", l.frames.Load())
	defer func() { sketchLogger.Debug("render loop stopped", "frames", l.frames.Load()) }()

	for !l.stop.Load() && !l.host.ShouldClose() {
		l.host.PollEvents()
		if l.stop.Load() {
			break
		}

		f := Frame{Index: l.frames.Load()}
		if err := l.step(f); err != nil {
			return fmt.Errorf("frame %d: %w", f.Index, err)
		}
		l.frames.Add(1)
		l.host.SwapBuffers()
	}
	return nil
}

// Stop makes a running Start return after the current frame. It is safe to call
// from any goroutine, including from inside the FrameFunc. Stop before Start has
// no effect.
func (l *Loop) Stop() {
	l.stop.Store(true)
}

// Running reports whether Start is executing.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}
