package storage

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

type redisBackend struct {
	client *redis.Client
}

// NewRedis returns a Backend that stores each collection blob under its key in
// redis. Blobs never expire; redis persistence settings decide durability.
func NewRedis(addr string) Backend {
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	return &redisBackend{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *redisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key %q", key)
	}
	return b, nil
}

func (r *redisBackend) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write key %q", key)
	}
	return nil
}

func (r *redisBackend) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete key %q", key)
	}
	return nil
}
