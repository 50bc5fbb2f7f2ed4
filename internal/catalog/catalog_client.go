package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	catalogerrors "github.com/Dusan-Milekic/PixelShop/internal/catalog/errors"
)

//go:generate mockgen -source=catalog_client.go -destination=../mock/catalog/catalog_client_mock.go -package=mock
type Client interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpClient) FetchProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/admin/products/get", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalogerrors.ErrCatalogUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, catalogerrors.ErrCatalogUnavailable
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: %v", catalogerrors.ErrCatalogUnavailable, err)
	}

	return products, nil
}
