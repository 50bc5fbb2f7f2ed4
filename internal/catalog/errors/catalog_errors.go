package catalogerrors

import (
	"net/http"

	"github.com/Dusan-Milekic/PixelShop/internal/pkg/apperror"
)

var (
	ErrCatalogUnreachable = apperror.New(
		apperror.CodeUpstreamUnreachable,
		"Could not reach the product catalog, please retry",
		http.StatusBadGateway,
	)

	ErrCatalogUnavailable = apperror.New(
		apperror.CodeUpstreamRejected,
		"Product catalog returned an unexpected response",
		http.StatusBadGateway,
	)
)
