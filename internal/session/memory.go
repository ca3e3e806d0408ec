package session

import (
	"context"
	"sync"
)

// memoryStorage keeps sessions for the lifetime of the process.
type memoryStorage struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

var _ Storage = (*memoryStorage)(nil)

// NewMemoryStorage returns a process-local Storage.
func NewMemoryStorage() *memoryStorage {
	return &memoryStorage{
		sessions: make(map[string]Session),
	}
}

func (m *memoryStorage) SaveSession(_ context.Context, profile string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[profile] = s
	return nil
}

func (m *memoryStorage) LoadSession(_ context.Context, profile string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[profile]
	if !ok {
		return Session{}, ErrNoSession
	}

	// Expired entries are returned so the service can report ErrSessionExpired.
	return s, nil
}

func (m *memoryStorage) DeleteSession(_ context.Context, profile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, profile)
	return nil
}
