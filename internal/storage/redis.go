package storage

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	myErr "gomarketplace/internal/types/errors"
)

type RedisStorage struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
}

func NewRedisStorage(redisClient *redis.Client, logger *zap.SugaredLogger) *RedisStorage {
	return &RedisStorage{
		RedisClient: redisClient,
		Logger:      logger,
	}
}

func (rs *RedisStorage) GetItem(ctx context.Context, key string) (string, error) {
	value, err := rs.RedisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", myErr.ErrNotFound
		}

		rs.Logger.Error(
			"Failed get item from Redis",
			zap.Error(err),
			zap.String("key", key),
		)

		return "", myErr.ErrStorageInternal
	}

	return value, nil
}

// SetItem сохраняет значение без TTL: корзина живет до следующей перезаписи
func (rs *RedisStorage) SetItem(ctx context.Context, key string, value string) error {
	if err := rs.RedisClient.Set(ctx, key, value, 0).Err(); err != nil {
		rs.Logger.Error(
			"Failed save item to Redis",
			zap.Error(err),
			zap.String("key", key),
		)

		return myErr.ErrStorageInternal
	}

	return nil
}

func (rs *RedisStorage) RemoveItem(ctx context.Context, key string) error {
	if err := rs.RedisClient.Del(ctx, key).Err(); err != nil {
		rs.Logger.Error(
			"Failed remove item from Redis",
			zap.Error(err),
			zap.String("key", key),
		)

		return myErr.ErrStorageInternal
	}

	return nil
}
