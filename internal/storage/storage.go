package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"gomarketplace/internal/app"
	myErr "gomarketplace/internal/types/errors"
)

const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// KeyValueStorage - асинхронное хранилище строк по строковому ключу
//
//go:generate mockgen -source=storage.go -destination=mocks.go -package=storage
type KeyValueStorage interface {
	// GetItem возвращает значение по ключу, myErr.ErrNotFound если ключа нет
	GetItem(ctx context.Context, key string) (string, error)
	// SetItem сохраняет значение, перезаписывая предыдущее
	SetItem(ctx context.Context, key string, value string) error
	// RemoveItem удаляет ключ, отсутствие ключа ошибкой не считается
	RemoveItem(ctx context.Context, key string) error
}

// New создает хранилище по настройкам из конфига.
// Возвращаемая функция закрывает соединения драйвера.
func New(cfg app.ConfigStorage, logger *zap.SugaredLogger) (KeyValueStorage, func() error, error) {
	switch cfg.Driver {
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.CfgRedis.Addr,
			Password: cfg.CfgRedis.Password,
			DB:       cfg.CfgRedis.DB,
		})

		return NewRedisStorage(client, logger), client.Close, nil
	case DriverPostgres:
		db, err := sql.Open("postgres", cfg.CfgDB.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}

		return NewPostgresStorage(db, logger), db.Close, nil
	case DriverMemory:
		return NewMemoryStorage(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", myErr.ErrUnknownDriver, cfg.Driver)
	}
}
