package carterrors

import (
	"net/http"

	"github.com/Dusan-Milekic/PixelShop/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidItem = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid cart item payload",
	http.StatusBadRequest,
)

// MapValidationError collapses validator failures into the package's
// invalid-item error; the field detail is not interesting for cart
// mutations, only for checkout.
func MapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(validator.ValidationErrors); ok {
		return ErrInvalidItem
	}
	return err
}
