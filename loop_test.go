package sketch_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-theft-auto/sketch"
)

func TestLoopStopFromFrame(t *testing.T) {
	host := newFakeWindow(1, 1)
	var loop *sketch.Loop
	var indices []uint64
	loop = sketch.NewLoop(host, func(f sketch.Frame) error {
		indices = append(indices, f.Index)
		if len(indices) == 3 {
			loop.Stop()
		}
		return nil
	})

	if err := loop.Start(); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	if len(indices) != 3 || indices[0] != 0 || indices[2] != 2 {
		t.Errorf("frame indices = %v, want [0 1 2]", indices)
	}
	if loop.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", loop.Frames())
	}
	if host.swaps != 3 {
		t.Errorf("swaps = %d, want the stopping frame to be presented", host.swaps)
	}
	if loop.Running() {
		t.Error("Running() should be false after Start returns")
	}
}

func TestLoopStopsWhenHostCloses(t *testing.T) {
	host := newFakeWindow(1, 1)
	host.closeAfter = 5
	frames := 0
	loop := sketch.NewLoop(host, func(sketch.Frame) error {
		frames++
		return nil
	})

	if err := loop.Start(); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	if frames != 5 {
		t.Errorf("frames = %d, want 5", frames)
	}
	if host.polls != 5 {
		t.Errorf("polls = %d, want one per frame", host.polls)
	}
}

func TestLoopStopDuringPollSkipsFrame(t *testing.T) {
	host := newFakeWindow(1, 1)
	frames := 0
	loop := sketch.NewLoop(host, func(sketch.Frame) error {
		frames++
		return nil
	})
	host.onPoll = loop.Stop

	if err := loop.Start(); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	if frames != 0 || host.swaps != 0 {
		t.Errorf("frames = %d, swaps = %d, want no frame after Stop in PollEvents", frames, host.swaps)
	}
}

func TestLoopReturnsFrameError(t *testing.T) {
	host := newFakeWindow(1, 1)
	errBoom := errors.New("boom")
	loop := sketch.NewLoop(host, func(f sketch.Frame) error {
		if f.Index == 2 {
			return errBoom
		}
		return nil
	})

	err := loop.Start()
	if !errors.Is(err, errBoom) {
		t.Fatalf("Start() error = %v, want %v", err, errBoom)
	}
	if !strings.Contains(err.Error(), "frame 2") {
		t.Errorf("error %q should name the failing frame", err)
	}
	if loop.Frames() != 2 || host.swaps != 2 {
		t.Errorf("frames = %d, swaps = %d, want 2 each", loop.Frames(), host.swaps)
	}
	if loop.Running() {
		t.Error("Running() should be false after a frame error")
	}
}

func TestLoopRejectsNestedStart(t *testing.T) {
	host := newFakeWindow(1, 1)
	var loop *sketch.Loop
	var nested error
	loop = sketch.NewLoop(host, func(sketch.Frame) error {
		if !loop.Running() {
			t.Error("Running() should be true inside a frame")
		}
		nested = loop.Start()
		loop.Stop()
		return nil
	})

	if err := loop.Start(); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	if !errors.Is(nested, sketch.ErrLoopRunning) {
		t.Errorf("nested Start() error = %v, want ErrLoopRunning", nested)
	}
}

func TestLoopStopBeforeStartIsIgnored(t *testing.T) {
	host := newFakeWindow(1, 1)
	host.closeAfter = 2
	loop := sketch.NewLoop(host, func(sketch.Frame) error { return nil })

	loop.Stop()
	if err := loop.Start(); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	if loop.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", loop.Frames())
	}
}

func TestLoopRestartContinuesFrameCount(t *testing.T) {
	host := newFakeWindow(1, 1)
	var loop *sketch.Loop
	var indices []uint64
	loop = sketch.NewLoop(host, func(f sketch.Frame) error {
		indices = append(indices, f.Index)
		loop.Stop()
		return nil
	})

	for range 2 {
		if err := loop.Start(); err != nil {
			t.Fatalf("Start() returned error: %v", err)
		}
	}
	if len(indices) != 2 || indices[1] != 1 {
		t.Errorf("frame indices = %v, want [0 1]", indices)
	}
}
