package persistence

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/planmoni-site/internal/config"
	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

func exerciseStore(t *testing.T, store kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	res, err := store.Load(ctx, "planmoni-blog-posts")
	require.NoError(t, err)
	assert.Equal(t, kvstore.StatusEmpty, res.Status)

	require.NoError(t, store.Save(ctx, "planmoni-blog-posts", []byte(`{"schema_version":1,"data":[]}`)))
	res, err = store.Load(ctx, "planmoni-blog-posts")
	require.NoError(t, err)
	assert.Equal(t, kvstore.StatusFound, res.Status)
	assert.JSONEq(t, `{"schema_version":1,"data":[]}`, string(res.Value))

	// overwrite is last-write-wins
	require.NoError(t, store.Save(ctx, "planmoni-blog-posts", []byte(`{"schema_version":1,"data":[{"id":"1"}]}`)))
	res, err = store.Load(ctx, "planmoni-blog-posts")
	require.NoError(t, err)
	assert.Contains(t, string(res.Value), `"id":"1"`)

	require.NoError(t, store.Save(ctx, "planmoni-about-data", []byte(`{not json`)))
	res, err = store.Load(ctx, "planmoni-about-data")
	require.NoError(t, err)
	assert.Equal(t, kvstore.StatusCorrupt, res.Status)
	assert.Equal(t, `{not json`, string(res.Value))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"planmoni-about-data", "planmoni-blog-posts"}, keys)

	require.NoError(t, store.Delete(ctx, "planmoni-about-data"))
	require.NoError(t, store.Delete(ctx, "missing-key"))
	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"planmoni-blog-posts"}, keys)
}

func TestMemoryKVStore(t *testing.T) {
	exerciseStore(t, NewMemoryKVStore())
}

func TestMemoryKVStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKVStore()

	buf := []byte(`{"a":1}`)
	require.NoError(t, store.Save(ctx, "k", buf))
	buf[2] = 'b'

	res, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(res.Value))
}

func TestSQLiteKVStore(t *testing.T) {
	store, err := OpenMemorySQLiteKVStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	exerciseStore(t, store)
}

func openFileStore(t *testing.T, path string) *SQLiteKVStore {
	t.Helper()
	store, err := NewSQLiteKVStore(path, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteKVStore_FileStoreAppliesPragmas(t *testing.T) {
	store := openFileStore(t, filepath.Join(t.TempDir(), "site.db"))
	ctx := context.Background()

	var journalMode string
	require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var busyTimeout int
	require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&busyTimeout))
	assert.Equal(t, 5000, busyTimeout)
}

// saveConcurrently runs writers goroutines, each saving perWriter documents
// through the store picked for it, and returns every error seen.
func saveConcurrently(stores []*SQLiteKVStore, writers, perWriter int) []error {
	ctx := context.Background()
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			store := stores[w%len(stores)]
			for i := 0; i < perWriter; i++ {
				key := fmt.Sprintf("doc-%d", i%5)
				value := []byte(fmt.Sprintf(`{"writer":%d,"n":%d}`, w, i))
				if err := store.Save(ctx, key, value); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}(w)
	}
	wg.Wait()
	return errs
}

func TestSQLiteKVStore_ConcurrentSaves(t *testing.T) {
	store := openFileStore(t, filepath.Join(t.TempDir(), "site.db"))

	assert.Empty(t, saveConcurrently([]*SQLiteKVStore{store}, 8, 100))

	keys, err := store.Keys(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 5)
}

func TestSQLiteKVStore_ConcurrentSavesAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.db")
	first := openFileStore(t, path)
	second := openFileStore(t, path)

	assert.Empty(t, saveConcurrently([]*SQLiteKVStore{first, second}, 8, 100))

	res, err := second.Load(context.Background(), "doc-4")
	require.NoError(t, err)
	assert.Equal(t, kvstore.StatusFound, res.Status)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNopLogger()

	var cfg config.Config
	cfg.Storage.Driver = config.StorageSQLite
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "data", "site.db")

	store, closeFn, err := OpenStore(ctx, cfg, log)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "k", []byte(`{}`)))
	closeFn()

	// reopening the same file sees the earlier write
	store, closeFn, err = OpenStore(ctx, cfg, log)
	require.NoError(t, err)
	defer closeFn()
	res, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, kvstore.StatusFound, res.Status)

	cfg.Storage.Driver = "etcd"
	_, _, err = OpenStore(ctx, cfg, log)
	assert.ErrorContains(t, err, "unknown storage driver")
}
