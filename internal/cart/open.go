package cart

import (
	"context"

	"go.uber.org/zap"

	"gomarketplace/internal/app"
	"gomarketplace/internal/storage"
)

// Open создает корзину по настройкам хранилища.
// При ResetOnStart сохраненная корзина удаляется до начала загрузки,
// ошибка удаления только логируется.
func Open(ctx context.Context, kv storage.KeyValueStorage, cfg app.ConfigStorage, logger *zap.SugaredLogger, opts ...Option) *Store {
	key := cfg.Key
	if key == "" {
		key = app.DefaultStorageKey
	}

	if cfg.ResetOnStart {
		if err := kv.RemoveItem(ctx, key); err != nil {
			logger.Warnw("failed to reset persisted cart", "key", key, "err", err)
		} else {
			logger.Infow("persisted cart removed on start", "key", key)
		}
	}

	opts = append([]Option{WithKey(key), WithTimeout(cfg.WriteTimeout)}, opts...)

	return NewStore(kv, logger, opts...)
}
