package career

import (
	"context"
	"time"

	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/career"
	"github.com/khoahotran/planmoni-site/internal/domain/content"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type CareersUseCase struct {
	repo      career.Repository
	publisher activity.Publisher
	logger    logger.Logger
	now       func() time.Time
}

func NewCareersUseCase(r career.Repository, pub activity.Publisher, log logger.Logger) *CareersUseCase {
	return &CareersUseCase{repo: r, publisher: pub, logger: log, now: time.Now}
}

type CreatePositionInput struct {
	Title        string
	Department   string
	Location     string
	Type         string
	Salary       string
	Description  string
	Requirements []string
	Status       career.Status
}

func (uc *CareersUseCase) CreatePosition(ctx context.Context, in CreatePositionInput) (*career.Position, error) {
	p := career.Position{
		Title:        in.Title,
		Department:   in.Department,
		Location:     in.Location,
		Type:         in.Type,
		Salary:       in.Salary,
		Description:  in.Description,
		Requirements: content.CleanLines(in.Requirements),
		Status:       in.Status,
		PostedDate:   datamanager.FormatDate(uc.now()),
	}
	if p.Status == "" {
		p.Status = career.StatusActive
	}
	if p.Type == "" {
		p.Type = career.JobTypes[0]
	}
	if missing := p.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("job position validation failed", err)
	}

	created, err := uc.repo.Add(ctx, p)
	if err != nil {
		return nil, err
	}

	uc.emit(activity.ActionCreated, created)
	return &created, nil
}

func (uc *CareersUseCase) UpdatePosition(ctx context.Context, id string, patch career.Patch) (*career.Position, error) {
	current, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFound("job position", id)
	}

	candidate := current.Clone()
	patch.Apply(&candidate)
	if missing := candidate.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if err := candidate.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("job position validation failed", err)
	}

	updated, found, err := uc.repo.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewNotFound("job position", id)
	}

	uc.emit(activity.ActionUpdated, updated)
	return &updated, nil
}

func (uc *CareersUseCase) DeletePosition(ctx context.Context, id string) error {
	current, ok := uc.repo.GetByID(id)
	if !ok {
		return apperror.NewNotFound("job position", id)
	}

	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("job position", id)
	}

	uc.emit(activity.ActionDeleted, current)
	return nil
}

func (uc *CareersUseCase) GetPosition(_ context.Context, id string) (*career.Position, error) {
	p, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFound("job position", id)
	}
	return &p, nil
}

func (uc *CareersUseCase) ListPositions(_ context.Context, f career.Filter) []career.Position {
	return uc.repo.Filter(f.Match)
}

// ActivePositions backs the public careers page. Paused and closed roles
// stay visible to the admin only.
func (uc *CareersUseCase) ActivePositions(_ context.Context, department, query string) []career.Position {
	f := career.Filter{Status: career.StatusActive, Department: department, Query: query}
	return uc.repo.Filter(f.Match)
}

// GetActivePosition is what the public application form resolves.
func (uc *CareersUseCase) GetActivePosition(_ context.Context, id string) (*career.Position, error) {
	p, ok := uc.repo.GetByID(id)
	if !ok || p.Status != career.StatusActive {
		return nil, apperror.NewNotFound("job position", id)
	}
	return &p, nil
}

func (uc *CareersUseCase) emit(action activity.Action, p career.Position) {
	service.PublishAsync(uc.publisher, uc.logger, activity.Event{
		Entity:   activity.EntityJobPosition,
		Action:   action,
		EntityID: p.ID,
		Title:    p.Title,
		At:       uc.now().UTC(),
	})
}
