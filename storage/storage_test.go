package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justiceflow/justiceflow-api/config"
	"github.com/justiceflow/justiceflow-api/storage"
)

func TestMemoryBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	assert.NoError(t, m.Put(ctx, "cases", []byte(`[]`)))
	b, err := m.Get(ctx, "cases")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[]`), b)

	assert.NoError(t, m.Delete(ctx, "cases"))
	_, err = m.Get(ctx, "cases")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()

	value := []byte(`["a"]`)
	assert.NoError(t, m.Put(ctx, "k", value))
	value[2] = 'b'

	got, err := m.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`["a"]`), got)
}

func TestFileBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := storage.NewFile(dir)
	assert.NoError(t, err)

	_, err = f.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	assert.NoError(t, f.Put(ctx, "cases", []byte(`[{"id":"CRIM-0001"}]`)))

	// blob lands in one file per key
	_, statErr := os.Stat(filepath.Join(dir, "cases.json"))
	assert.NoError(t, statErr)

	b, err := f.Get(ctx, "cases")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"CRIM-0001"}]`), b)

	assert.NoError(t, f.Delete(ctx, "cases"))
	_, err = f.Get(ctx, "cases")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestFileBackendDeleteMissingIsNoop(t *testing.T) {
	f, err := storage.NewFile(t.TempDir())
	assert.NoError(t, err)
	assert.NoError(t, f.Delete(context.Background(), "never-written"))
}

func TestNewSelectsBackend(t *testing.T) {
	tests := []struct {
		name    string
		conf    config.Config
		wantErr bool
	}{
		{name: "memory", conf: config.Config{StorageBackend: "memory"}},
		{name: "file default", conf: config.Config{StorageBackend: "", DataDir: t.TempDir()}},
		{name: "redis", conf: config.Config{StorageBackend: "redis"}},
		{name: "unknown", conf: config.Config{StorageBackend: "cloud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := storage.New(&tt.conf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, b)
		})
	}
}
