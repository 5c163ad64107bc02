package theme

import (
	"context"
	"sync"
)

// Store persists one Mode per key.
type Store interface {
	// Get returns the stored mode, or Automatic when nothing is stored.
	Get(ctx context.Context, key string) (Mode, error)
	// Set stores mode under key.
	Set(ctx context.Context, key string, mode Mode) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// MemoryStore keeps preferences in a process-local map.
type MemoryStore struct {
	mu    sync.RWMutex
	modes map[string]Mode
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{modes: make(map[string]Mode)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Mode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.modes[key]; ok {
		return m, nil
	}
	return Automatic, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, mode Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.modes[key] = mode
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.modes, key)
	return nil
}
