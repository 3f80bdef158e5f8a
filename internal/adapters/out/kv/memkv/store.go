// Package memkv keeps slots in process memory. Nothing survives a restart;
// it backs tests and the "memory" store backend.
package memkv

import (
	"context"
	"sync"

	"grabgo/internal/core/ports"
	"grabgo/internal/pkg/errs"
)

var _ ports.KeyValueStore = (*Store)(nil)

type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("key", key)
	}
	return append([]byte(nil), value...), nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = append([]byte(nil), value...)
	return nil
}
