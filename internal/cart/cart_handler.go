package cart

import (
	"net/http"
	"strconv"

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

func sessionID(ctx *gin.Context) string {
	return ctx.GetString(middleware.SessionKey)
}

func productIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("productId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid product id", nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) Detail(ctx *gin.Context) {
	res, err := h.service.Detail(ctx, sessionID(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) Summary(ctx *gin.Context) {
	res, err := h.service.Summary(ctx, sessionID(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) Count(ctx *gin.Context) {
	count, err := h.service.Count(ctx, sessionID(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", CartCountResponse{Count: count})
}

func (h *Handler) AddItem(ctx *gin.Context) {
	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.AddItem(ctx, sessionID(ctx), req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusCreated, "Item added to cart", nil)
}

func (h *Handler) UpdateQty(ctx *gin.Context) {
	id, ok := productIDParam(ctx)
	if !ok {
		return
	}

	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateQty(ctx, sessionID(ctx), id, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", nil)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	id, ok := productIDParam(ctx)
	if !ok {
		return
	}

	if err := h.service.RemoveItem(ctx, sessionID(ctx), id); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", nil)
}

func (h *Handler) Clear(ctx *gin.Context) {
	if err := h.service.Clear(ctx, sessionID(ctx)); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "Cart cleared", nil)
}
