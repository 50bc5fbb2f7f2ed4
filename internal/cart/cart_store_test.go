package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Dusan-Milekic/PixelShop/internal/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "11111111-1111-1111-1111-111111111111"

type failingStorage struct {
	loadErr error
	saveErr error
}

func (f *failingStorage) Load(context.Context, string) (cart.Cart, error) {
	return cart.Cart{}, f.loadErr
}
func (f *failingStorage) Save(context.Context, string, cart.Cart) error { return f.saveErr }
func (f *failingStorage) Delete(context.Context, string) error          { return f.saveErr }

func TestStore_MutationsAndReads(t *testing.T) {
	ctx := context.Background()
	store := cart.NewStore(cart.NewMemoryStorage(), nil)

	store.AddToCart(ctx, testSession, product(1, "30"))
	store.AddToCart(ctx, testSession, product(1, "30"))
	store.AddToCart(ctx, testSession, product(2, "12.50"))

	assert.Equal(t, int32(3), store.TotalItems(ctx, testSession))
	assert.True(t, store.TotalPrice(ctx, testSession).Equal(decimal.RequireFromString("72.50")))

	store.UpdateQuantity(ctx, testSession, 2, 0)
	assert.Equal(t, int32(2), store.TotalItems(ctx, testSession))

	store.RemoveFromCart(ctx, testSession, 1)
	assert.Equal(t, int32(0), store.TotalItems(ctx, testSession))
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := cart.NewStore(cart.NewMemoryStorage(), nil)

	store.AddToCart(ctx, "session-a", product(1, "10"))
	store.AddToCart(ctx, "session-b", product(2, "20"))
	store.AddToCart(ctx, "session-b", product(2, "20"))

	assert.Equal(t, int32(1), store.TotalItems(ctx, "session-a"))
	assert.Equal(t, int32(2), store.TotalItems(ctx, "session-b"))
}

func TestStore_RestoresFromStorage(t *testing.T) {
	ctx := context.Background()
	storage := cart.NewMemoryStorage()

	first := cart.NewStore(storage, nil)
	first.AddToCart(ctx, testSession, product(1, "10"))
	first.AddToCart(ctx, testSession, product(1, "10"))
	first.AddToCart(ctx, testSession, product(2, "5"))

	// A fresh store over the same storage simulates a reload.
	second := cart.NewStore(storage, nil)
	assert.Equal(t, int32(3), second.TotalItems(ctx, testSession))

	items := second.Items(ctx, testSession)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int32(2), items[0].Quantity)
}

func TestStore_ClearRemovesPersistedCart(t *testing.T) {
	ctx := context.Background()
	storage := cart.NewMemoryStorage()

	store := cart.NewStore(storage, nil)
	store.AddToCart(ctx, testSession, product(1, "10"))
	store.ClearCart(ctx, testSession)

	restored, err := storage.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, restored.Items)
	assert.Equal(t, int32(0), store.TotalItems(ctx, testSession))
}

func TestStore_StorageFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	storage := &failingStorage{
		loadErr: errors.New("storage down"),
		saveErr: errors.New("storage down"),
	}
	store := cart.NewStore(storage, nil)

	// Broken restore starts empty, broken persist never surfaces.
	store.AddToCart(ctx, testSession, product(1, "10"))
	assert.Equal(t, int32(1), store.TotalItems(ctx, testSession))

	store.ClearCart(ctx, testSession)
	assert.Equal(t, int32(0), store.TotalItems(ctx, testSession))
}
