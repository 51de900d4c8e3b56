package memory

import (
	"context"
	"fmt"
	"sync"
)

// Store is an in-memory object store used by tests and the local CLI.
type Store struct {
	mu      sync.RWMutex
	bucket  string
	objects map[string][]byte
}

func NewStore(bucket string) *Store {
	return &Store{
		bucket:  bucket,
		objects: make(map[string][]byte),
	}
}

func (s *Store) Put(_ context.Context, key string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}
	return data, nil
}

func (s *Store) URI(key string) string {
	return fmt.Sprintf("mem://%s/%s", s.bucket, key)
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}
