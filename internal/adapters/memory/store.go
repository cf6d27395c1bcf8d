// Package memory is an in-process StateStore, used for tests and for runs
// that should not touch disk.
package memory

import (
	"context"
	"errors"
	"sync"
)

// ErrWriteRefused is returned by Set when the store was built with FailWrites.
var ErrWriteRefused = errors.New("memory: write refused")

type Store struct {
	mu         sync.Mutex
	data       map[string]string
	failWrites bool
}

func New() *Store {
	return &Store{data: map[string]string{}}
}

// FailWrites makes every Set return ErrWriteRefused, the way a full or
// disabled browser store behaves.
func (s *Store) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return ErrWriteRefused
	}
	s.data[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
