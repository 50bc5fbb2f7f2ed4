package app

import (
	"fmt"
	"os"

	"github.com/Dusan-Milekic/PixelShop/internal/cart"
	"github.com/Dusan-Milekic/PixelShop/internal/events"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure, services and routes onto the router.
// The cart persistence backend is chosen by CART_STORAGE; everything
// else degrades gracefully when its backend is not configured.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	storage, err := buildCartStorage(logger)
	if err != nil {
		return err
	}

	publisher := buildPublisher(logger)

	registerModules(router, storage, publisher, logger)
	return nil
}

func buildCartStorage(logger *zap.Logger) (cart.Storage, error) {
	switch backend := os.Getenv("CART_STORAGE"); backend {
	case "", "memory":
		logger.Info("using in-memory cart storage")
		return cart.NewMemoryStorage(), nil

	case "file":
		dir := os.Getenv("CART_DIR")
		if dir == "" {
			dir = "data/carts"
		}
		logger.Info("using file cart storage", zap.String("dir", dir))
		return cart.NewFileStorage(dir)

	case "redis":
		rdb, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
		if err != nil {
			return nil, err
		}
		logger.Info("using redis cart storage")
		return cart.NewRedisStorage(rdb), nil

	case "postgres":
		db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
		if err != nil {
			return nil, err
		}
		logger.Info("using postgres cart storage")
		return cart.NewPostgresStorage(db), nil

	default:
		return nil, fmt.Errorf("unknown CART_STORAGE backend %q", backend)
	}
}

func buildPublisher(logger *zap.Logger) events.Publisher {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		logger.Info("no kafka broker configured, order events disabled")
		return events.NopPublisher{}
	}

	writer, err := connectKafkaWithRetry(broker, 5)
	if err != nil {
		logger.Warn("kafka unavailable, order events disabled", zap.Error(err))
		return events.NopPublisher{}
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "pixelshop.orders"
	}
	return events.NewKafkaPublisher(writer, topic)
}
