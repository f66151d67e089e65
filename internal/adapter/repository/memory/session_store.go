package memory

import (
	"context"
	"sync"
)

// SessionStore is an in-process SessionStore for tests and local runs. It
// has no expiry.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{data: make(map[string]map[string]string)}
}

func (s *SessionStore) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[sessionID][key]
	return val, ok, nil
}

func (s *SessionStore) Set(_ context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[sessionID] == nil {
		s.data[sessionID] = make(map[string]string)
	}
	s.data[sessionID][key] = value
	return nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.data[sessionID], k)
	}
	if len(s.data[sessionID]) == 0 {
		delete(s.data, sessionID)
	}
	return nil
}
