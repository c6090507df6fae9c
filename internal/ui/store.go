package ui

import "sync"

// Store serializes dispatches so concurrent effects cannot interleave
// partial updates.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners []func(State)
}

func NewStore(initial State) *Store {
	return &Store{state: initial}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a and notifies subscribers with the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	listeners := append([]func(State){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
