package career

import (
	"context"
	"errors"

	"github.com/khoahotran/planmoni-site/internal/domain/content"
)

const StorageKey = "planmoni-job-positions"

type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

var (
	Departments = []string{"Engineering", "Product", "Marketing", "Customer Success", "Operations", "Finance"}
	JobTypes    = []string{"Full-time", "Part-time", "Contract", "Internship"}
)

type Position struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Status       Status   `json:"status"`
	PostedDate   string   `json:"posted_date"`
}

var (
	ErrPositionNotFound = errors.New("job position not found")
	ErrInvalidStatus    = errors.New("invalid job position status")
)

func (p Position) GetID() string { return p.ID }

func (p Position) WithID(id string) Position {
	p.ID = id
	return p
}

func (p Position) Clone() Position {
	p.Requirements = content.CloneStrings(p.Requirements)
	return p
}

func (p *Position) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "title", Value: p.Title},
		content.Field{Name: "department", Value: p.Department},
		content.Field{Name: "location", Value: p.Location},
		content.Field{Name: "description", Value: p.Description},
	)
}

func (p *Position) Validate() error {
	switch p.Status {
	case StatusActive, StatusPaused, StatusClosed:
	default:
		return ErrInvalidStatus
	}
	return nil
}

type Patch struct {
	Title        *string   `json:"title"`
	Department   *string   `json:"department"`
	Location     *string   `json:"location"`
	Type         *string   `json:"type"`
	Salary       *string   `json:"salary"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements"`
	Status       *Status   `json:"status"`
	PostedDate   *string   `json:"posted_date"`
}

func (pt Patch) Apply(p *Position) {
	if pt.Title != nil {
		p.Title = *pt.Title
	}
	if pt.Department != nil {
		p.Department = *pt.Department
	}
	if pt.Location != nil {
		p.Location = *pt.Location
	}
	if pt.Type != nil {
		p.Type = *pt.Type
	}
	if pt.Salary != nil {
		p.Salary = *pt.Salary
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Requirements != nil {
		p.Requirements = content.CleanLines(*pt.Requirements)
	}
	if pt.Status != nil {
		p.Status = *pt.Status
	}
	if pt.PostedDate != nil {
		p.PostedDate = *pt.PostedDate
	}
}

// Filter query matches title, description, department and requirements.
type Filter struct {
	Status     Status
	Department string
	Query      string
}

func (f Filter) Match(p Position) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Department != "" && p.Department != f.Department {
		return false
	}
	fields := append([]string{p.Title, p.Description, p.Department}, p.Requirements...)
	return content.MatchesQuery(f.Query, fields...)
}

type Repository interface {
	All() []Position
	GetByID(id string) (Position, bool)
	Filter(keep func(Position) bool) []Position
	Add(ctx context.Context, p Position) (Position, error)
	Update(ctx context.Context, id string, mutate func(*Position)) (Position, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
