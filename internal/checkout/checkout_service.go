package checkout

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	autherrors "github.com/Dusan-Milekic/PixelShop/internal/auth/errors"
	"github.com/Dusan-Milekic/PixelShop/internal/cart"
	checkouterrors "github.com/Dusan-Milekic/PixelShop/internal/checkout/errors"
	"github.com/Dusan-Milekic/PixelShop/internal/events"
	"github.com/Dusan-Milekic/PixelShop/internal/orderapi"
	"github.com/Dusan-Milekic/PixelShop/internal/pricing"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	paymentMethodCardLabel = "Credit Card"
)

// Wire labels the Order Service expects for each form value.
var paymentMethodLabels = map[string]string{
	"card":   paymentMethodCardLabel,
	"paypal": "PayPal",
	"crypto": "Crypto",
}

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, userID, sessionID string, req SubmitRequest) (SubmitResponse, error)
	History(ctx context.Context, userID string) ([]OrderHistoryItem, error)
	State(userID string) State
}

type service struct {
	store     *cart.Store
	orders    orderapi.Client
	publisher events.Publisher
	validate  *validator.Validate
	logger    *zap.Logger

	mu     sync.Mutex
	states map[string]State
}

type Deps struct {
	Store     *cart.Store
	Orders    orderapi.Client
	Publisher events.Publisher
	Logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Store == nil {
		panic("cart store cannot be nil")
	}
	if deps.Orders == nil {
		panic("order client cannot be nil")
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NopPublisher{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		store:     deps.Store,
		orders:    deps.Orders,
		publisher: deps.Publisher,
		validate:  validator.New(),
		logger:    deps.Logger,
		states:    make(map[string]State),
	}
}

// State reports where the user's submission machine currently is. Users
// with no submission in progress are Editing.
func (s *service) State(userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[userID]; ok {
		return st
	}
	return StateEditing
}

func (s *service) setState(userID string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st == StateEditing {
		delete(s.states, userID)
		return
	}
	s.states[userID] = st
}

// begin claims the user's submission slot. A second concurrent submit is
// refused instead of queued; the UI disables the button, this guard is
// the backstop.
func (s *service) begin(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[userID]; ok && (st == StateValidating || st == StateSubmitting) {
		return checkouterrors.ErrSubmissionInFlight
	}
	s.states[userID] = StateValidating
	return nil
}

func (s *service) Submit(ctx context.Context, userID, sessionID string, req SubmitRequest) (SubmitResponse, error) {
	logger := s.logger.With(zap.String("user_id", userID))

	uid, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return SubmitResponse{}, autherrors.ErrInvalidUserID
	}

	if err := s.begin(userID); err != nil {
		return SubmitResponse{}, err
	}

	// Anything but success lands the shopper back in Editing with the
	// cart untouched.
	succeeded := false
	defer func() {
		if !succeeded {
			s.setState(userID, StateEditing)
		}
	}()

	items := s.store.Items(ctx, sessionID)
	if len(items) == 0 {
		return SubmitResponse{}, checkouterrors.ErrCartEmpty
	}

	if fieldErrs := validateSubmit(s.validate, req); fieldErrs.Any() {
		return SubmitResponse{}, &ValidationError{Fields: fieldErrs}
	}

	quote := pricing.Compute(s.store.TotalPrice(ctx, sessionID))
	totalAmount, _ := quote.Total.Round(2).Float64()
	subtotal, _ := quote.Subtotal.Round(2).Float64()

	s.setState(userID, StateSubmitting)

	order, err := s.orders.CreateOrder(ctx, orderapi.CreateOrderRequest{
		UserID:        uid,
		TotalAmount:   totalAmount,
		Price:         subtotal,
		FirstName:     req.Billing.FirstName,
		LastName:      req.Billing.LastName,
		Email:         req.Billing.Email,
		Address:       req.Billing.Address,
		City:          req.Billing.City,
		Zipcode:       req.Billing.ZipCode,
		Country:       req.Billing.Country,
		PhoneNumber:   req.Billing.Phone,
		PaymentMethod: paymentMethodLabels[req.PaymentMethod],
	})
	if err != nil {
		logger.Warn("order submission failed", zap.Error(err))
		return SubmitResponse{}, mapOrderError(err)
	}

	// Order is persisted upstream; the cart clears unconditionally now.
	s.store.ClearCart(ctx, sessionID)

	if err := s.publisher.OrderPlaced(ctx, events.OrderPlacedEvent{
		OrderID:       order.ID,
		UserID:        uid,
		TotalAmount:   totalAmount,
		PaymentMethod: paymentMethodLabels[req.PaymentMethod],
		PlacedAt:      time.Now(),
	}); err != nil {
		logger.Warn("failed to publish order placed event",
			zap.Int64("order_id", order.ID),
			zap.Error(err),
		)
	}

	succeeded = true
	s.setState(userID, StateSucceeded)
	logger.Info("checkout succeeded", zap.Int64("order_id", order.ID))

	return SubmitResponse{
		OrderID:     order.ID,
		State:       string(StateSucceeded),
		TotalAmount: totalAmount,
	}, nil
}

func (s *service) History(ctx context.Context, userID string) ([]OrderHistoryItem, error) {
	uid, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	orders, err := s.orders.ListByUser(ctx, uid)
	if err != nil {
		s.logger.Error("failed to fetch order history", zap.String("user_id", userID), zap.Error(err))
		return nil, mapOrderError(err)
	}

	res := make([]OrderHistoryItem, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderHistoryItem{
			ID:            o.ID,
			TotalAmount:   o.TotalAmount,
			Price:         o.Price,
			PaymentMethod: o.PaymentMethod,
			CreatedAt:     o.CreatedAt,
		})
	}
	return res, nil
}

// mapOrderError folds the client's failure taxonomy into user-facing
// errors: the server message wins when present, a generic fallback
// otherwise.
func mapOrderError(err error) error {
	if errors.Is(err, orderapi.ErrNetwork) {
		return checkouterrors.ErrOrderUnreachable
	}

	var svcErr *orderapi.ServiceError
	if errors.As(err, &svcErr) {
		if svcErr.Message != "" {
			return apperrorWithMessage(svcErr.Message)
		}
		return checkouterrors.ErrOrderRejected
	}
	return err
}

func apperrorWithMessage(message string) error {
	e := *checkouterrors.ErrOrderRejected
	e.Message = message
	return &e
}
