package blog

import (
	"context"
	"errors"

	"github.com/khoahotran/planmoni-site/internal/domain/content"
)

const StorageKey = "planmoni-blog-posts"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
)

var Categories = []string{"Psychology", "Financial Planning", "Savings", "Technology", "Freelancing", "Budgeting"}

type Post struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Excerpt  string  `json:"excerpt"`
	Content  *string `json:"content,omitempty"`
	Author   string  `json:"author"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Status   Status  `json:"status"`
	ReadTime string  `json:"read_time"`
	Image    *string `json:"image,omitempty"`
	Slug     string  `json:"slug"`
}

var (
	ErrPostNotFound  = errors.New("blog post not found")
	ErrInvalidStatus = errors.New("invalid blog post status")
)

func (p Post) GetID() string { return p.ID }

func (p Post) WithID(id string) Post {
	p.ID = id
	return p
}

func (p Post) Clone() Post {
	p.Content = content.CloneString(p.Content)
	p.Image = content.CloneString(p.Image)
	return p
}

func (p Post) Body() string {
	if p.Content == nil {
		return ""
	}
	return *p.Content
}

func (p *Post) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "title", Value: p.Title},
		content.Field{Name: "excerpt", Value: p.Excerpt},
		content.Field{Name: "author", Value: p.Author},
		content.Field{Name: "category", Value: p.Category},
	)
}

func (p *Post) Validate() error {
	switch p.Status {
	case StatusDraft, StatusPublished, StatusScheduled:
	default:
		return ErrInvalidStatus
	}
	return nil
}

// EnsureSlug derives the slug from the title when none was given.
func (p *Post) EnsureSlug() {
	if p.Slug == "" {
		p.Slug = content.Slugify(p.Title)
	}
}

// Patch carries the fields of a partial update; nil means "leave as is".
type Patch struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	Date     *string `json:"date"`
	Category *string `json:"category"`
	Status   *Status `json:"status"`
	ReadTime *string `json:"read_time"`
	Image    *string `json:"image"`
	Slug     *string `json:"slug"`
}

func (pt Patch) Apply(p *Post) {
	if pt.Title != nil {
		p.Title = *pt.Title
	}
	if pt.Excerpt != nil {
		p.Excerpt = *pt.Excerpt
	}
	if pt.Content != nil {
		p.Content = content.CloneString(pt.Content)
	}
	if pt.Author != nil {
		p.Author = *pt.Author
	}
	if pt.Date != nil {
		p.Date = *pt.Date
	}
	if pt.Category != nil {
		p.Category = *pt.Category
	}
	if pt.Status != nil {
		p.Status = *pt.Status
	}
	if pt.ReadTime != nil {
		p.ReadTime = *pt.ReadTime
	}
	if pt.Image != nil {
		p.Image = content.CloneString(pt.Image)
	}
	if pt.Slug != nil {
		p.Slug = *pt.Slug
	}
}

// Filter selects posts; zero fields are ignored. Query matches title,
// excerpt and content.
type Filter struct {
	Status   Status
	Category string
	Query    string
}

func (f Filter) Match(p Post) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return content.MatchesQuery(f.Query, p.Title, p.Excerpt, p.Body())
}

// Repository is the blog data manager.
type Repository interface {
	All() []Post
	GetByID(id string) (Post, bool)
	Filter(keep func(Post) bool) []Post
	Add(ctx context.Context, p Post) (Post, error)
	Update(ctx context.Context, id string, mutate func(*Post)) (Post, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
