package checkouterrors

import (
	"net/http"

	"github.com/Dusan-Milekic/PixelShop/internal/pkg/apperror"
)

var (
	// ErrCartEmpty short-circuits checkout entry; the shopper is sent
	// back to browsing. Not a fault.
	ErrCartEmpty = apperror.New(
		apperror.CodeConflict,
		"Your cart is empty. Please add items before proceeding to payment.",
		http.StatusConflict,
	)

	// ErrSubmissionInFlight rejects a second submit while one is running.
	ErrSubmissionInFlight = apperror.New(
		apperror.CodeConflict,
		"A payment is already being processed",
		http.StatusConflict,
	)

	ErrOrderRejected = apperror.New(
		apperror.CodeUpstreamRejected,
		"Payment failed. Please try again.",
		http.StatusBadGateway,
	)

	ErrOrderUnreachable = apperror.New(
		apperror.CodeUpstreamUnreachable,
		"Network error. Please check your connection and try again.",
		http.StatusBadGateway,
	)
)
