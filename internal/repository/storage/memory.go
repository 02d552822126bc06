package storage

import (
	"context"
	"sync"
)

// MemoryStorage keeps records for the lifetime of the process only.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (that *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}

	return value, nil
}

func (that *MemoryStorage) Set(_ context.Context, key, value string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.values[key] = value

	return nil
}

func (that *MemoryStorage) Remove(_ context.Context, key string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.values, key)

	return nil
}
