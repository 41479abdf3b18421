package storage

import (
	"context"
	"sync"

	myErr "gomarketplace/internal/types/errors"
)

// MemoryStorage держит значения в памяти процесса, для локального запуска и тестов
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		items: make(map[string]string),
	}
}

func (ms *MemoryStorage) GetItem(_ context.Context, key string) (string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	value, ok := ms.items[key]
	if !ok {
		return "", myErr.ErrNotFound
	}

	return value, nil
}

func (ms *MemoryStorage) SetItem(_ context.Context, key string, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[key] = value
	return nil
}

func (ms *MemoryStorage) RemoveItem(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
	return nil
}
