package records

import (
	"context"
	"sync"
)

// MemStore is a map-backed Store used by tests and local development.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) LoadBlob(_ context.Context, owner, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blobs[owner+"/"+key], nil
}

func (s *MemStore) SaveBlob(_ context.Context, owner, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.blobs[owner+"/"+key] = cp
	return nil
}
