// Package storage provides the small string key-value capability the game
// persists its records into. The backend is picked once at startup.
package storage

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
