package faq

import (
	"context"
	"time"

	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/faq"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type FAQUseCase struct {
	repo      faq.Repository
	publisher activity.Publisher
	logger    logger.Logger
	now       func() time.Time
}

func NewFAQUseCase(r faq.Repository, pub activity.Publisher, log logger.Logger) *FAQUseCase {
	return &FAQUseCase{repo: r, publisher: pub, logger: log, now: time.Now}
}

// CreateFAQ appends the question. A zero order puts it last in its category.
func (uc *FAQUseCase) CreateFAQ(ctx context.Context, f faq.FAQ) (*faq.FAQ, error) {
	if missing := f.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if f.Order == 0 {
		for _, existing := range uc.repo.Filter(faq.Filter{Category: f.Category}.Match) {
			if existing.Order > f.Order {
				f.Order = existing.Order
			}
		}
		f.Order++
	}

	created, err := uc.repo.Add(ctx, f)
	if err != nil {
		return nil, err
	}

	uc.emit(activity.ActionCreated, created)
	return &created, nil
}

func (uc *FAQUseCase) UpdateFAQ(ctx context.Context, id string, patch faq.Patch) (*faq.FAQ, error) {
	current, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFound("faq", id)
	}
	candidate := current.Clone()
	patch.Apply(&candidate)
	if missing := candidate.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}

	updated, found, err := uc.repo.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewNotFound("faq", id)
	}

	uc.emit(activity.ActionUpdated, updated)
	return &updated, nil
}

func (uc *FAQUseCase) DeleteFAQ(ctx context.Context, id string) error {
	current, ok := uc.repo.GetByID(id)
	if !ok {
		return apperror.NewNotFound("faq", id)
	}
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("faq", id)
	}

	uc.emit(activity.ActionDeleted, current)
	return nil
}

func (uc *FAQUseCase) GetFAQ(_ context.Context, id string) (*faq.FAQ, error) {
	f, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFound("faq", id)
	}
	return &f, nil
}

func (uc *FAQUseCase) ListFAQs(_ context.Context, f faq.Filter) []faq.FAQ {
	return uc.repo.Filter(f.Match)
}

// Grouped is the help center view.
func (uc *FAQUseCase) Grouped(ctx context.Context, f faq.Filter) []faq.Group {
	return faq.GroupByCategory(uc.ListFAQs(ctx, f))
}

func (uc *FAQUseCase) emit(action activity.Action, f faq.FAQ) {
	service.PublishAsync(uc.publisher, uc.logger, activity.Event{
		Entity:   activity.EntityFAQ,
		Action:   action,
		EntityID: f.ID,
		Title:    f.Question,
		At:       uc.now().UTC(),
	})
}
