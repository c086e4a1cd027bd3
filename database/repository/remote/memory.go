package remoteRepo

import (
	"context"
	"sync"

	"attendly/models"
)

// MemoryStore is an in-process RemoteStore for development and tests.
// SetFailure makes every call fail until cleared.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]map[models.AggregateKind][]byte
	fail error
	puts int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[models.AggregateKind][]byte)}
}

// SetFailure makes subsequent calls return err; nil restores normal behavior.
func (m *MemoryStore) SetFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

// Puts reports how many successful puts were applied.
func (m *MemoryStore) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

func (m *MemoryStore) GetAggregate(_ context.Context, userID string, kind models.AggregateKind) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, false, m.fail
	}
	payload, ok := m.docs[userID][kind]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

func (m *MemoryStore) PutAggregate(_ context.Context, userID string, kind models.AggregateKind, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if m.docs[userID] == nil {
		m.docs[userID] = make(map[models.AggregateKind][]byte)
	}
	m.docs[userID][kind] = append([]byte(nil), payload...)
	m.puts++
	return nil
}

func (m *MemoryStore) DeleteAggregate(_ context.Context, userID string, kind models.AggregateKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	delete(m.docs[userID], kind)
	return nil
}

func (m *MemoryStore) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fail
}
