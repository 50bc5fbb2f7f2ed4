package catalog

import (
	"net/http"

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

func (h *Handler) List(ctx *gin.Context) {
	products, err := h.service.List(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", products)
}
