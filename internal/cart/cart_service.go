package cart

import (
	"context"

	"github.com/Dusan-Milekic/PixelShop/internal/catalog"
	carterrors "github.com/Dusan-Milekic/PixelShop/internal/cart/errors"
	"github.com/Dusan-Milekic/PixelShop/internal/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, sessionID string) (CartDetailResponse, error)
	Summary(ctx context.Context, sessionID string) (CartSummaryResponse, error)
	Count(ctx context.Context, sessionID string) (int32, error)

	AddItem(ctx context.Context, sessionID string, req AddItemRequest) error
	UpdateQty(ctx context.Context, sessionID string, productID int64, req UpdateQtyRequest) error
	RemoveItem(ctx context.Context, sessionID string, productID int64) error
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store    *Store
	validate *validator.Validate
}

func NewService(store *Store) Service {
	if store == nil {
		panic("cart store cannot be nil")
	}
	return &service{
		store:    store,
		validate: validator.New(),
	}
}

func (s *service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return carterrors.MapValidationError(err)
	}

	s.store.AddToCart(ctx, sessionID, catalog.Product{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         decimal.NewFromFloat(req.Price),
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
		Likes:         req.Likes,
		ImageURL:      req.ImageURL,
	})
	return nil
}

func (s *service) UpdateQty(ctx context.Context, sessionID string, productID int64, req UpdateQtyRequest) error {
	s.store.UpdateQuantity(ctx, sessionID, productID, req.Quantity)
	return nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID int64) error {
	s.store.RemoveFromCart(ctx, sessionID, productID)
	return nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	s.store.ClearCart(ctx, sessionID)
	return nil
}

func (s *service) Count(ctx context.Context, sessionID string) (int32, error) {
	return s.store.TotalItems(ctx, sessionID), nil
}

func (s *service) Detail(ctx context.Context, sessionID string) (CartDetailResponse, error) {
	items := s.store.Items(ctx, sessionID)

	res := CartDetailResponse{Items: make([]CartItemResponse, 0, len(items))}
	total := decimal.Zero
	for _, item := range items {
		lineTotal := item.Price.Mul(decimal.NewFromInt32(item.Quantity))
		total = total.Add(lineTotal)
		res.TotalItems += item.Quantity

		price, _ := item.Price.Round(2).Float64()
		line, _ := lineTotal.Round(2).Float64()
		res.Items = append(res.Items, CartItemResponse{
			ID:            item.ID,
			Name:          item.Name,
			Price:         price,
			Quantity:      item.Quantity,
			StockQuantity: item.StockQuantity,
			Category:      item.Category,
			ImageURL:      item.ImageURL,
			LineTotal:     line,
		})
	}

	res.TotalPrice, _ = total.Round(2).Float64()
	return res, nil
}

func (s *service) Summary(ctx context.Context, sessionID string) (CartSummaryResponse, error) {
	quote := pricing.Compute(s.store.TotalPrice(ctx, sessionID))

	subtotal, _ := quote.Subtotal.Round(2).Float64()
	shipping, _ := quote.Shipping.Round(2).Float64()
	tax, _ := quote.Tax.Round(2).Float64()
	total, _ := quote.Total.Round(2).Float64()
	remaining, _ := quote.FreeShippingRemaining().Round(2).Float64()
	progress, _ := quote.FreeShippingProgress().Round(4).Float64()

	return CartSummaryResponse{
		Subtotal:              subtotal,
		Shipping:              shipping,
		Tax:                   tax,
		Total:                 total,
		FreeShippingRemaining: remaining,
		FreeShippingProgress:  progress,
	}, nil
}
