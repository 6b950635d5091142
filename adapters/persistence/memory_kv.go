package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
)

// memoryKVStore keeps documents in a map. It is the store used by tests and
// by the "memory" storage driver.
type memoryKVStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryKVStore() kvstore.Store {
	return &memoryKVStore{docs: make(map[string][]byte)}
}

func (s *memoryKVStore) Load(_ context.Context, key string) (kvstore.LoadResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.docs[key]
	if !ok {
		return kvstore.Empty(), nil
	}
	return kvstore.Classify(append([]byte(nil), value...)), nil
}

func (s *memoryKVStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = append([]byte(nil), value...)
	return nil
}

func (s *memoryKVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, key)
	return nil
}

func (s *memoryKVStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
