package press

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/planmoni-site/adapters/persistence"
	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/press"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type fakeUploader struct {
	mu      sync.Mutex
	opts    []service.UploadOptions
	deleted []string
}

func (f *fakeUploader) Upload(_ context.Context, file io.Reader, opts service.UploadOptions) (*service.UploadResult, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opts = append(f.opts, opts)
	return &service.UploadResult{
		URL:      "https://cdn.example.com/" + opts.Folder + "/" + opts.PublicID + ".png",
		PublicID: opts.Folder + "/" + opts.PublicID,
		Format:   "png",
		Bytes:    len(data),
	}, nil
}

func (f *fakeUploader) Delete(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicID)
	return nil
}

func newUseCase(t *testing.T, u service.Uploader) *PressUseCase {
	t.Helper()
	doc, err := datamanager.NewDocument(context.Background(), persistence.NewMemoryKVStore(), logger.NewNopLogger(),
		datamanager.DocumentOptions[press.Kit]{Key: press.StorageKey, Seed: press.Seed})
	require.NoError(t, err)
	uc := NewPressUseCase(doc, u, nil, logger.NewNopLogger())
	uc.now = func() time.Time { return time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC) }
	return uc
}

func TestAddNews_Prepends(t *testing.T) {
	uc := newUseCase(t, nil)
	ctx := context.Background()

	n, err := uc.AddNews(ctx, press.NewsItem{Title: "Planmoni raises pre-Series A", Outlet: "Techpoint"})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-14", n.Date)

	news := uc.GetKit(ctx).News
	require.Len(t, news, 3)
	assert.Equal(t, n.ID, news[0].ID)
}

func TestAddAsset_AppendsAndValidates(t *testing.T) {
	uc := newUseCase(t, nil)
	ctx := context.Background()

	a, err := uc.AddAsset(ctx, press.Asset{Name: "Brand Guide", Category: press.CategoryMarketing, URL: "/assets/brand.pdf"})
	require.NoError(t, err)

	assets := uc.GetKit(ctx).Assets
	require.Len(t, assets, 3)
	assert.Equal(t, a.ID, assets[2].ID)
	assert.Len(t, uc.ListAssets(ctx, press.CategoryMarketing), 1)

	_, err = uc.AddAsset(ctx, press.Asset{Name: "x", URL: "/x", Category: "banners"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestUploadAsset(t *testing.T) {
	u := &fakeUploader{}
	uc := newUseCase(t, u)
	ctx := context.Background()

	a, err := uc.UploadAsset(ctx, UploadAssetInput{
		File:     strings.NewReader(strings.Repeat("x", 2048)),
		FileName: "android-home.png",
		Category: press.CategoryScreenshots,
	})
	require.NoError(t, err)

	assert.Equal(t, "android-home", a.Name)
	assert.Equal(t, "PNG", a.Format)
	assert.Equal(t, "2.0 kB", a.Size)
	assert.Contains(t, a.URL, "planmoni/press-kit/screenshots/")
	assert.Len(t, uc.ListAssets(ctx, press.CategoryScreenshots), 2)
}

func TestUploadAsset_WithoutUploader(t *testing.T) {
	uc := newUseCase(t, nil)

	_, err := uc.UploadAsset(context.Background(), UploadAssetInput{File: strings.NewReader("x"), FileName: "a.png", Category: press.CategoryLogos})
	assert.True(t, errors.Is(err, apperror.ErrUnavailable))
}

func TestFacts(t *testing.T) {
	uc := newUseCase(t, nil)
	ctx := context.Background()

	_, err := uc.UpdateFact(ctx, 3, press.Fact{Label: "Active Users", Value: "20,000+"})
	require.NoError(t, err)
	assert.Equal(t, "20,000+", uc.GetKit(ctx).Facts[3].Value)

	_, err = uc.UpdateFact(ctx, 42, press.Fact{Label: "x", Value: "y"})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	facts, err := uc.SetFacts(ctx, []press.Fact{{Label: "Founded", Value: "2023"}})
	require.NoError(t, err)
	assert.Len(t, facts, 1)
}

func TestDeleteNewsAndAsset(t *testing.T) {
	uc := newUseCase(t, nil)
	ctx := context.Background()

	require.NoError(t, uc.DeleteNews(ctx, "2"))
	require.NoError(t, uc.DeleteAsset(ctx, "1"))
	assert.True(t, errors.Is(uc.DeleteAsset(ctx, "1"), apperror.ErrNotFound))

	kit := uc.GetKit(ctx)
	assert.Len(t, kit.News, 1)
	assert.Len(t, kit.Assets, 1)
}
