package ports

import "context"

// KVStore is the injected storage capability the record store is built on:
// get/set/remove of opaque values by key. Production uses redis; tests use
// an in-memory fake. Get returns (nil, nil) when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
