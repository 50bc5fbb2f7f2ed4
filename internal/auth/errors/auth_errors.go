package autherrors

import (
	"net/http"

	"github.com/Dusan-Milekic/PixelShop/internal/pkg/apperror"
)

// Account management lives in the external Account Service. This package
// only names the failures the storefront itself can hit when a request
// arrives without a usable session.
var (
	ErrNotAuthenticated = apperror.New(
		apperror.CodeUnauthorized,
		"Not authenticated, please sign in",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid authentication token",
		http.StatusBadRequest,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication token expired",
		http.StatusUnauthorized,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user id",
		http.StatusBadRequest,
	)
)
