package cart

import (
	"context"
	"sync"
)

// Storage persists one cart per session. Load returns an empty cart for
// an unknown session. The persisted document is {"cart": [...]} and must
// round-trip losslessly.
//
//go:generate mockgen -source=storage.go -destination=../mock/cart/storage_mock.go -package=mock
type Storage interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, c Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStorage keeps carts in process memory. It is the default backend
// and doubles as the test double for the store.
type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string]Cart)}
}

func (m *MemoryStorage) Load(_ context.Context, sessionID string) (Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.carts[sessionID]; ok {
		return c.clone(), nil
	}
	return Cart{}, nil
}

func (m *MemoryStorage) Save(_ context.Context, sessionID string, c Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[sessionID] = c.clone()
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	return nil
}
