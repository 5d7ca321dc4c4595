package repository

import "sync"

// EphemeralStore holds auth state for the lifetime of the process only,
// the counterpart of session-scoped browser storage. Its operations
// cannot fail.
type EphemeralStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewEphemeralStore() *EphemeralStore {
	return &EphemeralStore{values: make(map[string]string)}
}

func (s *EphemeralStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *EphemeralStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *EphemeralStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
