package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// All record-store keys live under one namespace so a shared Redis instance
// can host other tenants without collisions.
const keyPrefix = "callcenter:"

// KV is the production KVStore: each collection (and the session) is one
// Redis string holding a serialized JSON blob. Values are written whole —
// there are no partial updates, matching the store's read-modify-write
// contract.
type KV struct {
	client *redis.Client
}

func NewKV(client *redis.Client) *KV {
	return &KV{client: client}
}

// Get returns the blob stored under key, or (nil, nil) when the key is absent.
func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %s: %w", key, err)
	}
	return raw, nil
}

func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

func (s *KV) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("kv del %s: %w", key, err)
	}
	return nil
}
