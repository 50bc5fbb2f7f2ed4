package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNetwork marks transport-level failures (DNS, refused connection,
// timeout). The caller must keep cart and form state intact on it.
var ErrNetwork = errors.New("order service unreachable")

// ServiceError is a reachable upstream saying no: non-2xx status or a
// success:false envelope. Message carries the server-provided reason when
// there is one.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("order service rejected the request (status %d)", e.StatusCode)
}

//go:generate mockgen -source=orderapi_client.go -destination=../mock/orderapi/orderapi_client_mock.go -package=mock
type Client interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *httpClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Order{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders/create", bytes.NewReader(body))
	if err != nil {
		return Order{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Order{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	var envelope createOrderEnvelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Order{}, &ServiceError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}
	if decodeErr != nil {
		return Order{}, &ServiceError{StatusCode: resp.StatusCode, Message: "malformed order service response"}
	}
	if !envelope.Success {
		return Order{}, &ServiceError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	return envelope.Data, nil
}

func (c *httpClient) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	url := fmt.Sprintf("%s/api/orders/user/%d", c.baseURL, userID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServiceError{StatusCode: resp.StatusCode}
	}

	var orders []Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Message: "malformed order service response"}
	}
	return orders, nil
}
