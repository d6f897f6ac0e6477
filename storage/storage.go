// Package storage provides the durable key-value backend behind the record
// stores. Each logical collection lives as one JSON blob under a well-known
// key and is rewritten wholesale on every mutation; there are no transactions
// and the last writer wins.
package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/justiceflow/justiceflow-api/config"
)

// ErrKeyNotFound is returned by Get when no blob exists under the key.
// Callers treat it as "no data yet", never as a failure.
var ErrKeyNotFound = errors.New("storage: key not found")

// Backend is the interface for key-value storage backends
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// New builds the backend selected by the config. The default is the
// filesystem backend; tests inject NewMemory directly.
func New(conf *config.Config) (Backend, error) {
	switch conf.StorageBackend {
	case "memory":
		return NewMemory(), nil
	case "redis":
		return NewRedis(conf.RedisAddr), nil
	case "file", "":
		return NewFile(conf.DataDir)
	default:
		return nil, errors.Errorf("unknown storage backend %q", conf.StorageBackend)
	}
}
