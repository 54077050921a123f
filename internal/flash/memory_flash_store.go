package flash

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	flash     Flash
	expiresAt time.Time
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore is a process-local Store for development and tests.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (m *MemoryStore) Put(_ context.Context, sessionID string, kind Kind, message string) error {
	f, err := New(kind, message)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[sessionID] = entry{flash: f, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Pull(_ context.Context, sessionID string) (Flash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[sessionID]
	if !ok {
		return Flash{}, nil
	}
	delete(m.entries, sessionID)

	if m.now().After(e.expiresAt) {
		return Flash{}, nil
	}
	return e.flash, nil
}
