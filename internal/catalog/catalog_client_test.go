package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dusan-Milekic/PixelShop/internal/catalog"
	catalogerrors "github.com/Dusan-Milekic/PixelShop/internal/catalog/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/products/get", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"name":"Mechanical Keyboard","price":89.99,"stock_quantity":12,"category":"peripherals","likes":4},
			{"id":2,"name":"USB-C Hub","price":34.50,"stock_quantity":0,"category":"accessories","likes":9}
		]`))
	}))
	defer srv.Close()

	products, err := catalog.NewClient(srv.URL).FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Mechanical Keyboard", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("89.99")))
	assert.Equal(t, int32(0), products[1].StockQuantity)
}

func TestFetchProducts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := catalog.NewClient(srv.URL).FetchProducts(context.Background())
	assert.ErrorIs(t, err, catalogerrors.ErrCatalogUnavailable)
}

func TestFetchProducts_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := catalog.NewClient(srv.URL).FetchProducts(context.Background())
	assert.ErrorIs(t, err, catalogerrors.ErrCatalogUnreachable)
}

func TestFetchProducts_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oops":true}`))
	}))
	defer srv.Close()

	_, err := catalog.NewClient(srv.URL).FetchProducts(context.Background())
	assert.ErrorIs(t, err, catalogerrors.ErrCatalogUnavailable)
}
