package repo

import (
	"context"
	"sync"
)

// InMemorySlotStore is an in-memory implementation of SlotStore.
type InMemorySlotStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewInMemorySlotStore creates a new instance of InMemorySlotStore.
func NewInMemorySlotStore() *InMemorySlotStore {
	return &InMemorySlotStore{
		values: map[string]string{},
	}
}

// Load returns the value saved under key.
func (s *InMemorySlotStore) Load(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrSlotEmpty
	}
	return v, nil
}

// Save replaces the value under key.
func (s *InMemorySlotStore) Save(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *InMemorySlotStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = map[string]string{}
}
