package cart

import (
	"context"
	"sync"

	"github.com/Dusan-Milekic/PixelShop/internal/catalog"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store owns every session cart behind one lock, so mutations and derived
// reads never interleave mid-operation. Carts are loaded from Storage on
// first touch and written back after every mutation; a failed write is
// logged and swallowed so the in-memory cart stays authoritative for the
// session.
type Store struct {
	mu      sync.Mutex
	storage Storage
	logger  *zap.Logger
	carts   map[string]*Cart
}

func NewStore(storage Storage, logger *zap.Logger) *Store {
	if storage == nil {
		panic("cart storage cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		storage: storage,
		logger:  logger,
		carts:   make(map[string]*Cart),
	}
}

// cart returns the session's live cart, restoring it from storage the
// first time the session shows up. A broken restore falls back to an
// empty cart rather than failing the request.
func (s *Store) cart(ctx context.Context, sessionID string) *Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	loaded, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		s.logger.Warn("failed to restore cart, starting empty",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		loaded = Cart{}
	}

	c := &loaded
	s.carts[sessionID] = c
	return c
}

func (s *Store) persist(ctx context.Context, sessionID string, c *Cart) {
	if err := s.storage.Save(ctx, sessionID, c.clone()); err != nil {
		s.logger.Warn("failed to persist cart",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}

func (s *Store) AddToCart(ctx context.Context, sessionID string, p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	c.Add(p)
	s.persist(ctx, sessionID, c)
}

func (s *Store) RemoveFromCart(ctx context.Context, sessionID string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	c.Remove(productID)
	s.persist(ctx, sessionID, c)
}

func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	c.UpdateQuantity(productID, quantity)
	s.persist(ctx, sessionID, c)
}

func (s *Store) ClearCart(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	c.Clear()
	if err := s.storage.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("failed to delete persisted cart",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}

// Items returns a copy of the session's cart entries in insertion order.
func (s *Store) Items(ctx context.Context, sessionID string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, sessionID).clone().Items
}

func (s *Store) TotalItems(ctx context.Context, sessionID string) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, sessionID).TotalItems()
}

func (s *Store) TotalPrice(ctx context.Context, sessionID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, sessionID).TotalPrice()
}
