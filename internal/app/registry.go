package app

import (
	"os"

	"github.com/Dusan-Milekic/PixelShop/internal/cart"
	"github.com/Dusan-Milekic/PixelShop/internal/catalog"
	"github.com/Dusan-Milekic/PixelShop/internal/checkout"
	"github.com/Dusan-Milekic/PixelShop/internal/events"
	"github.com/Dusan-Milekic/PixelShop/internal/middleware"
	"github.com/Dusan-Milekic/PixelShop/internal/orderapi"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, storage cart.Storage, publisher events.Publisher, logger *zap.Logger) {
	// --- Upstream clients ---
	catalogClient := catalog.NewClient(os.Getenv("CATALOG_BASE_URL"))
	orderClient := orderapi.NewClient(os.Getenv("ORDER_BASE_URL"))

	// --- Domain state ---
	cartStore := cart.NewStore(storage, logger)

	// --- Services ---
	catalogService := catalog.NewService(catalogClient, logger)
	cartService := cart.NewService(cartStore)
	checkoutService := checkout.NewService(checkout.Deps{
		Store:     cartStore,
		Orders:    orderClient,
		Publisher: publisher,
		Logger:    logger,
	})

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// --- Routes ---
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SessionMiddleware())

	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
	}
}
