package backup

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/khoahotran/planmoni-site/adapters/persistence"
	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type recordingUploader struct {
	opts service.UploadOptions
	body []byte
}

func (u *recordingUploader) Upload(_ context.Context, file io.Reader, opts service.UploadOptions) (*service.UploadResult, error) {
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	u.opts, u.body = opts, body
	return &service.UploadResult{URL: "https://cdn.example.com/" + opts.PublicID, PublicID: opts.PublicID}, nil
}

func (u *recordingUploader) Delete(context.Context, string) error { return nil }

func TestExecute_WritesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryKVStore()
	_, err := datamanager.Open(ctx, store, logger.NewNopLogger(), nil)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "broken", []byte("{nope")))

	dir := t.TempDir()
	u := &recordingUploader{}
	uc := NewBackupUseCase(store, u, Options{Dir: dir, Upload: true}, logger.NewNopLogger())
	uc.now = func() time.Time { return time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC) }

	res, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Contains(t, res.Keys, blog.StorageKey)
	assert.Equal(t, "https://cdn.example.com/backup-2025-01-31_23-59-00.yaml", res.URL)
	assert.Equal(t, "raw", u.opts.ResourceType)

	raw, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, raw, u.body)

	var snap Snapshot
	require.NoError(t, yaml.Unmarshal(raw, &snap))
	assert.Equal(t, "{nope", snap.Documents["broken"])

	posts, ok := snap.Documents[blog.StorageKey].(map[string]any)
	require.True(t, ok)
	assert.Len(t, posts["data"], 3)
}

func TestExecute_LocalOnly(t *testing.T) {
	ctx := context.Background()
	uc := NewBackupUseCase(persistence.NewMemoryKVStore(), nil, Options{Dir: t.TempDir(), Upload: true}, logger.NewNopLogger())

	res, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.URL)
	assert.FileExists(t, res.Path)
}
