package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisCartTTL = 30 * 24 * time.Hour

// RedisStorage keeps carts in Redis for multi-instance deployments. Keys
// expire together with the session cookie.
type RedisStorage struct {
	rdb *redis.Client
}

func NewRedisStorage(rdb *redis.Client) *RedisStorage {
	return &RedisStorage{rdb: rdb}
}

func redisCartKey(sessionID string) string {
	return "pixelshop:cart:" + sessionID
}

func (r *RedisStorage) Load(ctx context.Context, sessionID string) (Cart, error) {
	data, err := r.rdb.Get(ctx, redisCartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Cart{}, nil
		}
		return Cart{}, err
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (r *RedisStorage) Save(ctx context.Context, sessionID string, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, redisCartKey(sessionID), data, redisCartTTL).Err()
}

func (r *RedisStorage) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, redisCartKey(sessionID)).Err()
}
