package kvstore

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store used when no Redis URL is configured.
// Contents live for the duration of the process only.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: map[string]memoryEntry{}, now: time.Now}
}

// Save stores a copy of payload under key.
func (m *Memory) Save(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	if m == nil || key == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := memoryEntry{payload: append([]byte(nil), payload...)}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

// Load returns the payload stored under key, honouring expiry.
func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	if m == nil || key == "" {
		return nil, false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return append([]byte(nil), entry.payload...), true, nil
}
