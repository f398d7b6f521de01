package store

import (
	"log/slog"
	"sync"
)

// Listener observes a commit. It receives the snapshots before and after and
// may dispatch; see Store.
type Listener func(prev, next State)

type change struct {
	prev State
	next State
}

type subscription struct {
	id int
	fn Listener
}

// Store is the single state container. Commits are serialized by one mutex;
// listeners run outside of it, one commit at a time, in commit order. A
// listener may dispatch; the nested commit is queued and delivered to every
// listener only after the current notification has finished.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners []subscription
	nextID    int
	pending   []change
	draining  bool
	logger    *slog.Logger
}

// New creates a store holding InitialState.
func New(logger *slog.Logger) *Store {
	return &Store{
		state:  InitialState(),
		logger: logger,
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Dispatch applies the actions as one commit.
func (s *Store) Dispatch(actions ...Action) {
	if len(actions) == 0 {
		return
	}

	s.Apply(func(State) []Action { return actions })
}

// Apply calls decide with the current snapshot while holding the commit lock
// and applies the returned actions as one atomic commit. It reports whether
// anything was committed; decide returning no actions commits nothing.
// decide must not call back into the store.
func (s *Store) Apply(decide func(State) []Action) bool {
	s.mu.Lock()
	actions := decide(s.state)
	if len(actions) == 0 {
		s.mu.Unlock()

		return false
	}

	prev := s.state
	next := prev
	for _, action := range actions {
		next = Reduce(next, action)
		s.logger.Debug("Action applied", slog.String("type", string(action.Type())))
	}
	s.state = next
	s.pending = append(s.pending, change{prev: prev, next: next})

	if s.draining {
		s.mu.Unlock()

		return true
	}
	s.draining = true
	s.mu.Unlock()

	s.drain()

	return true
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)

				return
			}
		}
	}
}

func (s *Store) drain() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()

			return
		}
		batch := s.pending
		s.pending = nil
		listeners := s.listeners
		s.mu.Unlock()

		for _, c := range batch {
			for _, sub := range listeners {
				s.notify(sub.fn, c)
			}
		}
	}
}

func (s *Store) notify(fn Listener, c change) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Store listener panicked", slog.Any("panic", r))
		}
	}()

	fn(c.prev, c.next)
}
