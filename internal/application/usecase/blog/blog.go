package blog

import (
	"context"
	"strings"
	"time"

	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type BlogUseCase struct {
	repo      blog.Repository
	publisher activity.Publisher
	logger    logger.Logger
	now       func() time.Time
}

func NewBlogUseCase(r blog.Repository, pub activity.Publisher, log logger.Logger) *BlogUseCase {
	return &BlogUseCase{repo: r, publisher: pub, logger: log, now: time.Now}
}

type CreatePostInput struct {
	Title    string
	Excerpt  string
	Content  string
	Author   string
	Category string
	Status   blog.Status
	ReadTime string
	Image    string
	Slug     string
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func (uc *BlogUseCase) CreatePost(ctx context.Context, in CreatePostInput) (*blog.Post, error) {
	p := blog.Post{
		Title:    in.Title,
		Excerpt:  in.Excerpt,
		Content:  optional(in.Content),
		Author:   in.Author,
		Category: in.Category,
		Status:   in.Status,
		ReadTime: in.ReadTime,
		Image:    optional(in.Image),
		Slug:     in.Slug,
		Date:     datamanager.FormatDate(uc.now()),
	}
	if p.Status == "" {
		p.Status = blog.StatusDraft
	}
	if missing := p.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("blog post validation failed", err)
	}
	p.EnsureSlug()

	created, err := uc.repo.Add(ctx, p)
	if err != nil {
		return nil, err
	}

	uc.emit(activity.ActionCreated, created)
	return &created, nil
}

// UpdatePost merges patch into the post. An explicitly empty slug is
// regenerated from the title; a post stored without a slug keeps it empty
// unless the patch asks for one.
func (uc *BlogUseCase) UpdatePost(ctx context.Context, id string, patch blog.Patch) (*blog.Post, error) {
	current, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFound("blog post", id)
	}

	mutate := func(p *blog.Post) {
		patch.Apply(p)
		if patch.Slug != nil && *patch.Slug == "" {
			p.EnsureSlug()
		}
	}

	candidate := current.Clone()
	mutate(&candidate)
	if missing := candidate.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	if err := candidate.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("blog post validation failed", err)
	}

	updated, found, err := uc.repo.Update(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewNotFound("blog post", id)
	}

	uc.emit(activity.ActionUpdated, updated)
	return &updated, nil
}

func (uc *BlogUseCase) DeletePost(ctx context.Context, id string) error {
	current, ok := uc.repo.GetByID(id)
	if !ok {
		return apperror.NewNotFound("blog post", id)
	}

	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("blog post", id)
	}

	uc.emit(activity.ActionDeleted, current)
	return nil
}

func (uc *BlogUseCase) GetPost(_ context.Context, id string) (*blog.Post, error) {
	p, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFound("blog post", id)
	}
	return &p, nil
}

// GetPublishedPost finds a published post by slug, falling back to id.
func (uc *BlogUseCase) GetPublishedPost(_ context.Context, slugOrID string) (*blog.Post, error) {
	matches := uc.repo.Filter(func(p blog.Post) bool {
		return p.Status == blog.StatusPublished && (p.Slug == slugOrID || p.ID == slugOrID)
	})
	if len(matches) == 0 {
		return nil, apperror.NewNotFound("blog post", slugOrID)
	}
	return &matches[0], nil
}

func (uc *BlogUseCase) ListPosts(_ context.Context, f blog.Filter) []blog.Post {
	return uc.repo.Filter(f.Match)
}

func (uc *BlogUseCase) ListPublished(_ context.Context, category, query string) []blog.Post {
	f := blog.Filter{Status: blog.StatusPublished, Category: category, Query: query}
	return uc.repo.Filter(f.Match)
}

// Featured is the newest published post.
func (uc *BlogUseCase) Featured(ctx context.Context) (*blog.Post, bool) {
	published := uc.ListPublished(ctx, "", "")
	if len(published) == 0 {
		return nil, false
	}
	return &published[0], true
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCounts counts published posts per category. Known categories come
// first in catalog order, even when empty; unknown ones follow.
func (uc *BlogUseCase) CategoryCounts(ctx context.Context) []CategoryCount {
	counts := make(map[string]int)
	var extra []string
	for _, p := range uc.ListPublished(ctx, "", "") {
		if _, seen := counts[p.Category]; !seen && !isKnownCategory(p.Category) {
			extra = append(extra, p.Category)
		}
		counts[p.Category]++
	}

	out := make([]CategoryCount, 0, len(blog.Categories)+len(extra))
	for _, c := range blog.Categories {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	for _, c := range extra {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	return out
}

func isKnownCategory(c string) bool {
	for _, k := range blog.Categories {
		if k == c {
			return true
		}
	}
	return false
}

func (uc *BlogUseCase) emit(action activity.Action, p blog.Post) {
	service.PublishAsync(uc.publisher, uc.logger, activity.Event{
		Entity:   activity.EntityBlogPost,
		Action:   action,
		EntityID: p.ID,
		Title:    p.Title,
		At:       uc.now().UTC(),
	})
}
