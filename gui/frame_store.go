package gui

import "sync"

// Cleanable is implemented by stores that drop entries not touched recently.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the frame counter and cleans every registered store.
// Context.Reset calls it once per frame.
func NextFrame() {
	registryMu.Lock()
	currentFrame++
	frame := currentFrame
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(frame)
	}
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore keeps typed per-widget state between frames.
// Entries not read during the previous frame are removed.
//
//	var sliderStore = gui.NewFrameStore[SliderState]()
//	state := sliderStore.Get(id, SliderState{})
type FrameStore[T any] struct {
	mu     sync.Mutex
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a store and registers it for per-frame cleanup.
func NewFrameStore[T any]() *FrameStore[T] {
	s := &FrameStore[T]{states: make(map[ID]*stateEntry[T])}
	registerStore(s)
	return s
}

// Get returns the state for id, creating it from def on first use.
func (s *FrameStore[T]) Get(id ID, def T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: def}
		s.states[id] = entry
	}
	entry.lastFrame = currentFrame
	return &entry.value
}

// Lookup returns existing state for id without creating or touching it.
func (s *FrameStore[T]) Lookup(id ID) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Cleanup removes entries not read in the previous frame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.states {
		if entry.lastFrame+1 < frame {
			delete(s.states, id)
		}
	}
}

// Len returns the number of live entries.
func (s *FrameStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
