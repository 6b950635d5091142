package jobapplication

import (
	"context"
	"time"

	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/career"
	"github.com/khoahotran/planmoni-site/internal/domain/jobapplication"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

// PositionLookup is the slice of the careers manager an application needs.
type PositionLookup interface {
	GetByID(id string) (career.Position, bool)
}

type ApplicationsUseCase struct {
	repo      jobapplication.Repository
	positions PositionLookup
	publisher activity.Publisher
	logger    logger.Logger
	now       func() time.Time
}

func NewApplicationsUseCase(r jobapplication.Repository, positions PositionLookup, pub activity.Publisher, log logger.Logger) *ApplicationsUseCase {
	return &ApplicationsUseCase{repo: r, positions: positions, publisher: pub, logger: log, now: time.Now}
}

type SubmitInput struct {
	PositionID         string
	PositionTitle      string
	ApplicantName      string
	Email              string
	Phone              string
	Location           string
	Experience         string
	CoverLetter        string
	ResumeFileName     string
	PortfolioURL       string
	LinkedinURL        string
	AvailableStartDate string
	SalaryExpectation  string
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Submit stores a candidate's application. The position id is not checked;
// when it resolves, the position title is copied onto the application.
func (uc *ApplicationsUseCase) Submit(ctx context.Context, in SubmitInput) (*jobapplication.Application, error) {
	a := jobapplication.Application{
		PositionID:         in.PositionID,
		PositionTitle:      in.PositionTitle,
		ApplicantName:      in.ApplicantName,
		Email:              in.Email,
		Phone:              in.Phone,
		Location:           in.Location,
		Experience:         in.Experience,
		CoverLetter:        in.CoverLetter,
		ResumeFileName:     optional(in.ResumeFileName),
		PortfolioURL:       optional(in.PortfolioURL),
		LinkedinURL:        optional(in.LinkedinURL),
		AvailableStartDate: in.AvailableStartDate,
		SalaryExpectation:  in.SalaryExpectation,
		Status:             jobapplication.StatusPending,
		AppliedDate:        datamanager.FormatDate(uc.now()),
	}
	if missing := a.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if uc.positions != nil {
		if p, ok := uc.positions.GetByID(a.PositionID); ok {
			a.PositionTitle = p.Title
		}
	}

	created, err := uc.repo.Add(ctx, a)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Application received")
	uc.emit(activity.ActionCreated, created)
	return &created, nil
}

func (uc *ApplicationsUseCase) UpdateApplication(ctx context.Context, id string, patch jobapplication.Patch) (*jobapplication.Application, error) {
	current, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFound("job application", id)
	}

	candidate := current.Clone()
	patch.Apply(&candidate)
	if missing := candidate.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if err := candidate.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("job application validation failed", err)
	}

	updated, found, err := uc.repo.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewNotFound("job application", id)
	}

	uc.emit(activity.ActionUpdated, updated)
	return &updated, nil
}

// SetStatus is the admin's status dropdown.
func (uc *ApplicationsUseCase) SetStatus(ctx context.Context, id string, status jobapplication.Status) (*jobapplication.Application, error) {
	return uc.UpdateApplication(ctx, id, jobapplication.Patch{Status: &status})
}

func (uc *ApplicationsUseCase) DeleteApplication(ctx context.Context, id string) error {
	current, ok := uc.repo.GetByID(id)
	if !ok {
		return apperror.NewNotFound("job application", id)
	}

	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("job application", id)
	}

	uc.emit(activity.ActionDeleted, current)
	return nil
}

func (uc *ApplicationsUseCase) GetApplication(_ context.Context, id string) (*jobapplication.Application, error) {
	a, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFound("job application", id)
	}
	return &a, nil
}

func (uc *ApplicationsUseCase) ListApplications(_ context.Context, f jobapplication.Filter) []jobapplication.Application {
	return uc.repo.Filter(f.Match)
}

func (uc *ApplicationsUseCase) Stats(_ context.Context) jobapplication.Stats {
	return jobapplication.Summarize(uc.repo.All())
}

func (uc *ApplicationsUseCase) emit(action activity.Action, a jobapplication.Application) {
	service.PublishAsync(uc.publisher, uc.logger, activity.Event{
		Entity:   activity.EntityApplication,
		Action:   action,
		EntityID: a.ID,
		Title:    a.ApplicantName,
		At:       uc.now().UTC(),
	})
}
