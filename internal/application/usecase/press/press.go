package press

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/press"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

const uploadFolder = "planmoni/press-kit"

type PressUseCase struct {
	repo      press.Repository
	uploader  service.Uploader
	publisher activity.Publisher
	logger    logger.Logger
	now       func() time.Time
}

// NewPressUseCase accepts a nil uploader; UploadAsset then reports the
// service as unavailable.
func NewPressUseCase(r press.Repository, u service.Uploader, pub activity.Publisher, log logger.Logger) *PressUseCase {
	return &PressUseCase{repo: r, uploader: u, publisher: pub, logger: log, now: time.Now}
}

func (uc *PressUseCase) GetKit(_ context.Context) press.Kit {
	return uc.repo.Get()
}

func (uc *PressUseCase) ListAssets(_ context.Context, category press.AssetCategory) []press.Asset {
	return uc.repo.Get().AssetsByCategory(category)
}

func (uc *PressUseCase) AddAsset(ctx context.Context, a press.Asset) (*press.Asset, error) {
	if missing := a.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if err := a.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("press asset validation failed", err)
	}
	a.ID = uc.repo.NewID()

	if _, err := uc.repo.Update(ctx, func(k *press.Kit) error {
		k.AddAsset(a)
		return nil
	}); err != nil {
		return nil, err
	}

	uc.emit(activity.ActionCreated, a.ID, a.Name)
	return &a, nil
}

type UploadAssetInput struct {
	File        io.Reader
	FileName    string
	SizeBytes   int64
	Name        string
	Category    press.AssetCategory
	Description string
}

// UploadAsset stores the file with the media uploader and records it as an
// asset. The uploaded file is removed again if the asset cannot be saved.
func (uc *PressUseCase) UploadAsset(ctx context.Context, in UploadAssetInput) (*press.Asset, error) {
	if uc.uploader == nil {
		return nil, apperror.NewUnavailable("media uploads are not configured")
	}
	if in.Name == "" {
		in.Name = strings.TrimSuffix(in.FileName, path.Ext(in.FileName))
	}
	a := press.Asset{
		Name:        in.Name,
		Category:    in.Category,
		Format:      strings.ToUpper(strings.TrimPrefix(path.Ext(in.FileName), ".")),
		Description: in.Description,
		URL:         "pending",
	}
	if missing := a.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if err := a.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("press asset validation failed", err)
	}

	a.ID = uc.repo.NewID()
	res, err := uc.uploader.Upload(ctx, in.File, service.UploadOptions{
		Folder:   fmt.Sprintf("%s/%s", uploadFolder, a.Category),
		PublicID: a.ID,
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to upload press asset", err)
	}
	a.URL = res.URL
	if res.Format != "" {
		a.Format = strings.ToUpper(res.Format)
	}
	size := in.SizeBytes
	if res.Bytes > 0 {
		size = int64(res.Bytes)
	}
	if size > 0 {
		a.Size = humanize.Bytes(uint64(size))
	}

	if _, err := uc.repo.Update(ctx, func(k *press.Kit) error {
		k.AddAsset(a)
		return nil
	}); err != nil {
		go func() {
			if delErr := uc.uploader.Delete(context.Background(), res.PublicID); delErr != nil {
				uc.logger.Error("Failed to remove orphaned press upload", delErr, zap.String("public_id", res.PublicID))
			}
		}()
		return nil, err
	}

	uc.emit(activity.ActionCreated, a.ID, a.Name)
	return &a, nil
}

func (uc *PressUseCase) UpdateAsset(ctx context.Context, id string, patch press.AssetPatch) (*press.Asset, error) {
	var out press.Asset
	_, err := uc.repo.Update(ctx, func(k *press.Kit) error {
		updated, ok := k.UpdateAsset(id, patch)
		if !ok {
			return apperror.NewNotFound("press asset", id)
		}
		if missing := updated.MissingFields(); len(missing) > 0 {
			return apperror.NewMissingFields(missing...)
		}
		if err := updated.Validate(); err != nil {
			return apperror.NewInvalidInput("press asset validation failed", err)
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.emit(activity.ActionUpdated, out.ID, out.Name)
	return &out, nil
}

func (uc *PressUseCase) DeleteAsset(ctx context.Context, id string) error {
	var name string
	_, err := uc.repo.Update(ctx, func(k *press.Kit) error {
		for _, a := range k.Assets {
			if a.ID == id {
				name = a.Name
			}
		}
		if !k.DeleteAsset(id) {
			return apperror.NewNotFound("press asset", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.emit(activity.ActionDeleted, id, name)
	return nil
}

// AddNews puts the item at the top of the coverage list. The date defaults
// to today.
func (uc *PressUseCase) AddNews(ctx context.Context, n press.NewsItem) (*press.NewsItem, error) {
	if missing := n.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if n.Date == "" {
		n.Date = datamanager.FormatDate(uc.now())
	}
	n.ID = uc.repo.NewID()

	if _, err := uc.repo.Update(ctx, func(k *press.Kit) error {
		k.AddNews(n)
		return nil
	}); err != nil {
		return nil, err
	}

	uc.emit(activity.ActionCreated, n.ID, n.Title)
	return &n, nil
}

func (uc *PressUseCase) UpdateNews(ctx context.Context, id string, patch press.NewsPatch) (*press.NewsItem, error) {
	var out press.NewsItem
	_, err := uc.repo.Update(ctx, func(k *press.Kit) error {
		updated, ok := k.UpdateNews(id, patch)
		if !ok {
			return apperror.NewNotFound("news item", id)
		}
		if missing := updated.MissingFields(); len(missing) > 0 {
			return apperror.NewMissingFields(missing...)
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.emit(activity.ActionUpdated, out.ID, out.Title)
	return &out, nil
}

func (uc *PressUseCase) DeleteNews(ctx context.Context, id string) error {
	var title string
	_, err := uc.repo.Update(ctx, func(k *press.Kit) error {
		for _, n := range k.News {
			if n.ID == id {
				title = n.Title
			}
		}
		if !k.DeleteNews(id) {
			return apperror.NewNotFound("news item", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.emit(activity.ActionDeleted, id, title)
	return nil
}

func (uc *PressUseCase) SetFacts(ctx context.Context, facts []press.Fact) ([]press.Fact, error) {
	for _, f := range facts {
		if strings.TrimSpace(f.Label) == "" || strings.TrimSpace(f.Value) == "" {
			return nil, apperror.NewMissingFields("label", "value")
		}
	}
	k, err := uc.repo.Update(ctx, func(k *press.Kit) error {
		k.Facts = append([]press.Fact(nil), facts...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.emit(activity.ActionUpdated, "facts", "Company facts")
	return k.Facts, nil
}

func (uc *PressUseCase) UpdateFact(ctx context.Context, index int, f press.Fact) (*press.Fact, error) {
	if strings.TrimSpace(f.Label) == "" || strings.TrimSpace(f.Value) == "" {
		return nil, apperror.NewMissingFields("label", "value")
	}
	_, err := uc.repo.Update(ctx, func(k *press.Kit) error {
		if !k.UpdateFact(index, f) {
			return apperror.NewNotFound("company fact", fmt.Sprint(index))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.emit(activity.ActionUpdated, "facts", f.Label)
	return &f, nil
}

func (uc *PressUseCase) emit(action activity.Action, id, title string) {
	service.PublishAsync(uc.publisher, uc.logger, activity.Event{
		Entity:   activity.EntityPress,
		Action:   action,
		EntityID: id,
		Title:    title,
		At:       uc.now().UTC(),
	})
}
