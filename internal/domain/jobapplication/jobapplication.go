package jobapplication

import (
	"context"
	"errors"

	"github.com/khoahotran/planmoni-site/internal/domain/content"
)

const StorageKey = "planmoni-job-applications"

type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusRejected  Status = "rejected"
	StatusHired     Status = "hired"
)

var Statuses = []Status{StatusPending, StatusReviewing, StatusInterview, StatusRejected, StatusHired}

// Application is a candidate's submission. PositionID is not checked against
// the careers list; PositionTitle is copied at submission time.
type Application struct {
	ID                 string  `json:"id"`
	PositionID         string  `json:"position_id"`
	PositionTitle      string  `json:"position_title"`
	ApplicantName      string  `json:"applicant_name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Location           string  `json:"location"`
	Experience         string  `json:"experience"`
	CoverLetter        string  `json:"cover_letter"`
	ResumeFileName     *string `json:"resume_file_name,omitempty"`
	PortfolioURL       *string `json:"portfolio_url,omitempty"`
	LinkedinURL        *string `json:"linkedin_url,omitempty"`
	AvailableStartDate string  `json:"available_start_date"`
	SalaryExpectation  string  `json:"salary_expectation"`
	Status             Status  `json:"status"`
	AppliedDate        string  `json:"applied_date"`
	Notes              *string `json:"notes,omitempty"`
}

var (
	ErrApplicationNotFound = errors.New("job application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
)

func (a Application) GetID() string { return a.ID }

func (a Application) WithID(id string) Application {
	a.ID = id
	return a
}

func (a Application) Clone() Application {
	a.ResumeFileName = content.CloneString(a.ResumeFileName)
	a.PortfolioURL = content.CloneString(a.PortfolioURL)
	a.LinkedinURL = content.CloneString(a.LinkedinURL)
	a.Notes = content.CloneString(a.Notes)
	return a
}

func (a *Application) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "applicant_name", Value: a.ApplicantName},
		content.Field{Name: "email", Value: a.Email},
		content.Field{Name: "phone", Value: a.Phone},
		content.Field{Name: "location", Value: a.Location},
		content.Field{Name: "experience", Value: a.Experience},
		content.Field{Name: "cover_letter", Value: a.CoverLetter},
	)
}

func ValidStatus(s Status) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

func (a *Application) Validate() error {
	if !ValidStatus(a.Status) {
		return ErrInvalidStatus
	}
	return nil
}

type Patch struct {
	Status             *Status `json:"status"`
	Notes              *string `json:"notes"`
	PositionTitle      *string `json:"position_title"`
	ApplicantName      *string `json:"applicant_name"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	Location           *string `json:"location"`
	Experience         *string `json:"experience"`
	CoverLetter        *string `json:"cover_letter"`
	AvailableStartDate *string `json:"available_start_date"`
	SalaryExpectation  *string `json:"salary_expectation"`
}

func (pt Patch) Apply(a *Application) {
	if pt.Status != nil {
		a.Status = *pt.Status
	}
	if pt.Notes != nil {
		a.Notes = content.CloneString(pt.Notes)
	}
	if pt.PositionTitle != nil {
		a.PositionTitle = *pt.PositionTitle
	}
	if pt.ApplicantName != nil {
		a.ApplicantName = *pt.ApplicantName
	}
	if pt.Email != nil {
		a.Email = *pt.Email
	}
	if pt.Phone != nil {
		a.Phone = *pt.Phone
	}
	if pt.Location != nil {
		a.Location = *pt.Location
	}
	if pt.Experience != nil {
		a.Experience = *pt.Experience
	}
	if pt.CoverLetter != nil {
		a.CoverLetter = *pt.CoverLetter
	}
	if pt.AvailableStartDate != nil {
		a.AvailableStartDate = *pt.AvailableStartDate
	}
	if pt.SalaryExpectation != nil {
		a.SalaryExpectation = *pt.SalaryExpectation
	}
}

// Filter query matches applicant name, email and position title.
type Filter struct {
	PositionID string
	Status     Status
	Query      string
}

func (f Filter) Match(a Application) bool {
	if f.PositionID != "" && a.PositionID != f.PositionID {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	return content.MatchesQuery(f.Query, a.ApplicantName, a.Email, a.PositionTitle)
}

// Stats is the per-status breakdown shown above the applications table.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[Status]int `json:"by_status"`
}

func Summarize(apps []Application) Stats {
	s := Stats{Total: len(apps), ByStatus: make(map[Status]int, len(Statuses))}
	for _, st := range Statuses {
		s.ByStatus[st] = 0
	}
	for _, a := range apps {
		s.ByStatus[a.Status]++
	}
	return s
}

type Repository interface {
	All() []Application
	GetByID(id string) (Application, bool)
	Filter(keep func(Application) bool) []Application
	Add(ctx context.Context, a Application) (Application, error)
	Update(ctx context.Context, id string, mutate func(*Application)) (Application, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
