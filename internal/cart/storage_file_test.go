package cart_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dusan-Milekic/PixelShop/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	storage, err := cart.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	var c cart.Cart
	c.Add(product(1, "19.99"))
	c.Add(product(2, "5.50"))
	c.UpdateQuantity(1, 3)

	require.NoError(t, storage.Save(ctx, testSession, c))

	restored, err := storage.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, c, restored)
}

func TestFileStorage_UnknownSessionIsEmpty(t *testing.T) {
	storage, err := cart.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	c, err := storage.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestFileStorage_WireFormat(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	storage, err := cart.NewFileStorage(dir)
	require.NoError(t, err)

	var c cart.Cart
	c.Add(product(7, "30"))
	require.NoError(t, storage.Save(ctx, testSession, c))

	// The persisted document is {"cart": [...]}.
	data, err := os.ReadFile(filepath.Join(dir, testSession+".json"))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "cart")
}

func TestFileStorage_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	storage, err := cart.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	var c cart.Cart
	c.Add(product(1, "10"))
	require.NoError(t, storage.Save(ctx, testSession, c))

	assert.NoError(t, storage.Delete(ctx, testSession))
	assert.NoError(t, storage.Delete(ctx, testSession))
}
