package cart_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Dusan-Milekic/PixelShop/internal/cart"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStorage_Load(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	storage := cart.NewPostgresStorage(db)
	ctx := context.Background()

	t.Run("returns_persisted_cart", func(t *testing.T) {
		var c cart.Cart
		c.Add(product(1, "19.99"))
		payload, _ := json.Marshal(c)

		mockDB.ExpectQuery("SELECT payload FROM session_carts").
			WithArgs(testSession).
			WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

		restored, err := storage.Load(ctx, testSession)
		require.NoError(t, err)
		assert.Equal(t, c, restored)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("unknown_session_is_empty", func(t *testing.T) {
		mockDB.ExpectQuery("SELECT payload FROM session_carts").
			WithArgs(testSession).
			WillReturnRows(sqlmock.NewRows([]string{"payload"}))

		restored, err := storage.Load(ctx, testSession)
		require.NoError(t, err)
		assert.Empty(t, restored.Items)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestPostgresStorage_Save(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	storage := cart.NewPostgresStorage(db)

	var c cart.Cart
	c.Add(product(1, "10"))

	mockDB.ExpectExec("INSERT INTO session_carts").
		WithArgs(testSession, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, storage.Save(context.Background(), testSession, c))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPostgresStorage_Delete(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	storage := cart.NewPostgresStorage(db)

	mockDB.ExpectExec("DELETE FROM session_carts").
		WithArgs(testSession).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, storage.Delete(context.Background(), testSession))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
