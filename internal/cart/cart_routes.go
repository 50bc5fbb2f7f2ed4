package cart

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	cart := r.Group("/cart")
	{
		cart.GET("", handler.Detail)
		cart.GET("/summary", handler.Summary)
		cart.GET("/count", handler.Count)
		cart.POST("/items", handler.AddItem)
		cart.PATCH("/items/:productId", handler.UpdateQty)
		cart.DELETE("/items/:productId", handler.RemoveItem)
		cart.DELETE("", handler.Clear)
	}
}
