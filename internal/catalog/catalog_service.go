package catalog

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]ProductResponse, error)
}

type service struct {
	client Client
	logger *zap.Logger
}

func NewService(client Client, logger *zap.Logger) Service {
	if client == nil {
		panic("catalog client cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{client: client, logger: logger}
}

// List re-fetches on every call; there is no staleness policy beyond that.
func (s *service) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		s.logger.Error("failed to fetch products", zap.Error(err))
		return nil, err
	}

	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, mapProductToResponse(p))
	}
	return res, nil
}
