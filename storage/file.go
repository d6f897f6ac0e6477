package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type fileBackend struct {
	dir string
}

// NewFile returns a Backend that keeps one JSON file per key under dir
func NewFile(dir string) (Backend, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}
	return &fileBackend{dir: dir}, nil
}

func (f *fileBackend) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *fileBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key %q", key)
	}
	return b, nil
}

func (f *fileBackend) Put(ctx context.Context, key string, value []byte) error {
	// Write through a temp file so a crash mid-write cannot leave a truncated
	// blob; a torn blob would otherwise trigger a reseed and lose the
	// collection.
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write key %q", key)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return errors.Wrapf(err, "failed to commit key %q", key)
	}
	return nil
}

func (f *fileBackend) Delete(ctx context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete key %q", key)
	}
	return nil
}
