// Package memory provides an in-process key/value backend. State lives as long
// as the process does.
package memory

import (
	"context"
	"sync"

	"bezgo/internal/infra/persistence/kv"
)

type store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New returns an empty in-memory store.
func New() kv.Store {
	return &store{values: make(map[string][]byte)}
}

func (s *store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	return append([]byte(nil), v...), true, nil
}

func (s *store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)

	return nil
}

func (s *store) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.values, key)
	}

	return nil
}
