package state

import "sync"

// Store holds the current View of one view-model and the generation of the
// load that owns it. Only the most recently begun load may settle it.
type Store[T any] struct {
	mu         sync.Mutex
	view       View[T]
	generation uint64
	listeners  []func(View[T])
}

// Begin starts a new load: the view becomes Loading and the returned
// generation supersedes every earlier one.
func (s *Store[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.apply(Loading[T]())
	return s.generation
}

// Settle replaces the view when generation is still current. It reports
// whether the view was applied.
func (s *Store[T]) Settle(generation uint64, view View[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}
	s.apply(view)
	return true
}

// Snapshot returns the current view.
func (s *Store[T]) Snapshot() View[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Generation returns the generation of the latest Begin, zero before any.
func (s *Store[T]) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Subscribe registers fn to receive every applied view in order. fn runs with
// the store locked and must not call back into it.
func (s *Store[T]) Subscribe(fn func(View[T])) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store[T]) apply(view View[T]) {
	s.view = view
	for _, fn := range s.listeners {
		fn(view)
	}
}
