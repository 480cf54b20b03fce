// Package storage provides the persisted key-value blob store backing the
// domain stores. Each logical collection is one key whose value is rewritten
// in full on every mutation.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written
// or has been deleted.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is the blob persistence contract. Implementations must treat each
// Put as a full replacement of the value under key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}
