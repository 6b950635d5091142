package legal

import (
	"context"
	"strings"
	"time"

	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/legal"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type LegalUseCase struct {
	pages     map[legal.Kind]legal.Repository
	publisher activity.Publisher
	logger    logger.Logger
	now       func() time.Time
}

func NewLegalUseCase(pages map[legal.Kind]legal.Repository, pub activity.Publisher, log logger.Logger) *LegalUseCase {
	return &LegalUseCase{pages: pages, publisher: pub, logger: log, now: time.Now}
}

func (uc *LegalUseCase) page(kind string) (legal.Kind, legal.Repository, error) {
	k, err := legal.ParseKind(kind)
	if err != nil {
		return "", nil, apperror.NewNotFound("legal page", kind)
	}
	repo, ok := uc.pages[k]
	if !ok {
		return "", nil, apperror.NewNotFound("legal page", kind)
	}
	return k, repo, nil
}

// GetPage returns the page with its sections in display order.
func (uc *LegalUseCase) GetPage(_ context.Context, kind string) (*legal.Page, error) {
	_, repo, err := uc.page(kind)
	if err != nil {
		return nil, err
	}
	p := repo.Get().Sorted()
	return &p, nil
}

func (uc *LegalUseCase) SetLastUpdated(ctx context.Context, kind, lastUpdated string) (*legal.Page, error) {
	return uc.update(ctx, kind, "Last updated", func(p *legal.Page) error {
		if strings.TrimSpace(lastUpdated) == "" {
			return apperror.NewMissingFields("last_updated")
		}
		p.LastUpdated = lastUpdated
		return nil
	})
}

// AddSection appends a section. A zero order places it after the last one.
func (uc *LegalUseCase) AddSection(ctx context.Context, kind string, s legal.Section) (*legal.Section, error) {
	if missing := s.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	_, repo, err := uc.page(kind)
	if err != nil {
		return nil, err
	}
	s.ID = repo.NewID()

	_, err = uc.update(ctx, kind, s.Title, func(p *legal.Page) error {
		if s.Order == 0 {
			for _, existing := range p.Sections {
				if existing.Order >= s.Order {
					s.Order = existing.Order + 1
				}
			}
		}
		p.AddSection(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *LegalUseCase) UpdateSection(ctx context.Context, kind, id string, patch legal.SectionPatch) (*legal.Section, error) {
	var out legal.Section
	_, err := uc.update(ctx, kind, "Section", func(p *legal.Page) error {
		updated, ok := p.UpdateSection(id, patch)
		if !ok {
			return apperror.NewNotFound("section", id)
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
	return &out, nil
}

func (uc *LegalUseCase) DeleteSection(ctx context.Context, kind, id string) error {
	_, err := uc.update(ctx, kind, "Section", func(p *legal.Page) error {
		if !p.DeleteSection(id) {
			return apperror.NewNotFound("section", id)
		}
		return nil
	})
	return err
}

func (uc *LegalUseCase) update(ctx context.Context, kind, title string, mutate func(*legal.Page) error) (*legal.Page, error) {
	k, repo, err := uc.page(kind)
	if err != nil {
		return nil, err
	}
	p, err := repo.Update(ctx, mutate)
	if err != nil {
		return nil, err
	}

	service.PublishAsync(uc.publisher, uc.logger, activity.Event{
		Entity:   activity.EntityLegal,
		Action:   activity.ActionUpdated,
		EntityID: string(k),
		Title:    k.Title() + ": " + title,
		At:       uc.now().UTC(),
	})
	sorted := p.Sorted()
	return &sorted, nil
}
