package checkout

import (
	"errors"
	"net/http"

	"github.com/Dusan-Milekic/PixelShop/internal/middleware"
	"github.com/Dusan-Milekic/PixelShop/internal/pkg/apperror"
	"github.com/Dusan-Milekic/PixelShop/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Submit(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")
	sessionID := ctx.GetString(middleware.SessionKey)

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Submit(ctx, userID, sessionID, req)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			response.Error(ctx, http.StatusUnprocessableEntity, apperror.CodeValidationFailed,
				"Please correct the highlighted fields", validationErr.Fields)
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Payment successful", res)
}

func (h *Handler) History(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	orders, err := h.service.History(ctx, userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", orders)
}

func (h *Handler) State(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")
	response.Success(ctx, http.StatusOK, "", gin.H{"state": h.service.State(userID)})
}
