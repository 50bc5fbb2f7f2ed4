package checkout

import (
	"github.com/Dusan-Milekic/PixelShop/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	co := r.Group("/checkout")
	co.Use(middleware.AuthMiddleware())
	{
		co.POST("/submit", handler.Submit)
		co.GET("/state", handler.State)
	}

	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", handler.History)
	}
}
