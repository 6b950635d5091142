package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/khoahotran/planmoni-site/internal/application/crudflow"
	blogUC "github.com/khoahotran/planmoni-site/internal/application/usecase/blog"
	careerUC "github.com/khoahotran/planmoni-site/internal/application/usecase/career"
	faqUC "github.com/khoahotran/planmoni-site/internal/application/usecase/faq"
	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/internal/domain/career"
	"github.com/khoahotran/planmoni-site/internal/domain/faq"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
)

func ptr[T any](v T) *T { return &v }

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Blog posts

var postsEntity = entity[blog.Post]{
	use:  "posts",
	name: "blog post",
	fields: []crudflow.Field{
		{Name: "title", Label: "Title", Required: true},
		{Name: "excerpt", Label: "Excerpt", Required: true},
		{Name: "author", Label: "Author", Required: true},
		{Name: "category", Label: "Category (" + strings.Join(blog.Categories, ", ") + ")", Required: true},
		{Name: "status", Label: "Status (draft, published, scheduled)"},
		{Name: "read_time", Label: "Read time"},
		{Name: "image", Label: "Image URL"},
		{Name: "content", Label: "Content (markdown)"},
		{Name: "slug", Label: "Slug (blank derives it from the title)"},
	},
	backend: func(a *app) crudflow.Backend[blog.Post] { return postBackend{uc: a.blog} },
	toForm: func(p blog.Post) crudflow.Form {
		return crudflow.Form{
			"title": p.Title, "excerpt": p.Excerpt, "author": p.Author, "category": p.Category,
			"status": string(p.Status), "read_time": p.ReadTime, "image": deref(p.Image),
			"content": deref(p.Content), "slug": p.Slug,
		}
	},
	list: func(ctx context.Context, a *app, q string) []blog.Post {
		return a.blog.ListPosts(ctx, blog.Filter{Query: q})
	},
	header: []string{"TITLE", "CATEGORY", "STATUS", "DATE"},
	row: func(p blog.Post) []string {
		return []string{p.Title, p.Category, string(p.Status), p.Date}
	},
}

type postBackend struct {
	uc *blogUC.BlogUseCase
}

func (b postBackend) Get(ctx context.Context, id string) (*blog.Post, error) {
	return b.uc.GetPost(ctx, id)
}

func (b postBackend) Create(ctx context.Context, f crudflow.Form) (*blog.Post, error) {
	return b.uc.CreatePost(ctx, blogUC.CreatePostInput{
		Title:    f.Get("title"),
		Excerpt:  f.Get("excerpt"),
		Content:  f.Get("content"),
		Author:   f.Get("author"),
		Category: f.Get("category"),
		Status:   blog.Status(f.Get("status")),
		ReadTime: f.Get("read_time"),
		Image:    f.Get("image"),
		Slug:     f.Get("slug"),
	})
}

func (b postBackend) Update(ctx context.Context, id string, f crudflow.Form) (*blog.Post, error) {
	patch := blog.Patch{
		Title:    ptr(f.Get("title")),
		Excerpt:  ptr(f.Get("excerpt")),
		Author:   ptr(f.Get("author")),
		Category: ptr(f.Get("category")),
		ReadTime: ptr(f.Get("read_time")),
		Slug:     ptr(f.Get("slug")),
		Content:  ptr(f.Get("content")),
	}
	if s := f.Get("status"); s != "" {
		patch.Status = ptr(blog.Status(s))
	}
	if img := f.Get("image"); img != "" {
		patch.Image = ptr(img)
	}
	return b.uc.UpdatePost(ctx, id, patch)
}

func (b postBackend) Delete(ctx context.Context, id string) error {
	return b.uc.DeletePost(ctx, id)
}

// Job positions

var positionsEntity = entity[career.Position]{
	use:  "positions",
	name: "job position",
	fields: []crudflow.Field{
		{Name: "title", Label: "Title", Required: true},
		{Name: "department", Label: "Department (" + strings.Join(career.Departments, ", ") + ")", Required: true},
		{Name: "location", Label: "Location", Required: true},
		{Name: "type", Label: "Type (" + strings.Join(career.JobTypes, ", ") + ")"},
		{Name: "salary", Label: "Salary"},
		{Name: "description", Label: "Description", Required: true},
		{Name: "requirements", Label: "Requirements (separate with |)"},
		{Name: "status", Label: "Status (active, paused, closed)"},
	},
	backend: func(a *app) crudflow.Backend[career.Position] { return positionBackend{uc: a.careers} },
	toForm: func(p career.Position) crudflow.Form {
		return crudflow.Form{
			"title": p.Title, "department": p.Department, "location": p.Location, "type": p.Type,
			"salary": p.Salary, "description": p.Description,
			"requirements": strings.Join(p.Requirements, " | "), "status": string(p.Status),
		}
	},
	list: func(ctx context.Context, a *app, q string) []career.Position {
		return a.careers.ListPositions(ctx, career.Filter{Query: q})
	},
	header: []string{"TITLE", "DEPARTMENT", "STATUS", "POSTED"},
	row: func(p career.Position) []string {
		return []string{p.Title, p.Department, string(p.Status), p.PostedDate}
	},
}

type positionBackend struct {
	uc *careerUC.CareersUseCase
}

func (b positionBackend) Get(ctx context.Context, id string) (*career.Position, error) {
	return b.uc.GetPosition(ctx, id)
}

func (b positionBackend) Create(ctx context.Context, f crudflow.Form) (*career.Position, error) {
	return b.uc.CreatePosition(ctx, careerUC.CreatePositionInput{
		Title:        f.Get("title"),
		Department:   f.Get("department"),
		Location:     f.Get("location"),
		Type:         f.Get("type"),
		Salary:       f.Get("salary"),
		Description:  f.Get("description"),
		Requirements: f.Lines("requirements"),
		Status:       career.Status(f.Get("status")),
	})
}

func (b positionBackend) Update(ctx context.Context, id string, f crudflow.Form) (*career.Position, error) {
	patch := career.Patch{
		Title:        ptr(f.Get("title")),
		Department:   ptr(f.Get("department")),
		Location:     ptr(f.Get("location")),
		Salary:       ptr(f.Get("salary")),
		Description:  ptr(f.Get("description")),
		Requirements: ptr(f.Lines("requirements")),
	}
	if t := f.Get("type"); t != "" {
		patch.Type = ptr(t)
	}
	if s := f.Get("status"); s != "" {
		patch.Status = ptr(career.Status(s))
	}
	return b.uc.UpdatePosition(ctx, id, patch)
}

func (b positionBackend) Delete(ctx context.Context, id string) error {
	return b.uc.DeletePosition(ctx, id)
}

// Help center

var faqsEntity = entity[faq.FAQ]{
	use:  "faqs",
	name: "FAQ",
	fields: []crudflow.Field{
		{Name: "category", Label: "Category (" + strings.Join(faq.Categories, ", ") + ")", Required: true},
		{Name: "question", Label: "Question", Required: true},
		{Name: "answer", Label: "Answer", Required: true},
		{Name: "order", Label: "Order (blank puts it last)"},
	},
	backend: func(a *app) crudflow.Backend[faq.FAQ] { return faqBackend{uc: a.faqs} },
	toForm: func(f faq.FAQ) crudflow.Form {
		return crudflow.Form{
			"category": f.Category, "question": f.Question, "answer": f.Answer,
			"order": strconv.Itoa(f.Order),
		}
	},
	list: func(ctx context.Context, a *app, q string) []faq.FAQ {
		return a.faqs.ListFAQs(ctx, faq.Filter{Query: q})
	},
	header: []string{"CATEGORY", "ORDER", "QUESTION"},
	row: func(f faq.FAQ) []string {
		return []string{f.Category, strconv.Itoa(f.Order), f.Question}
	},
}

type faqBackend struct {
	uc *faqUC.FAQUseCase
}

func parseOrder(f crudflow.Form) (int, error) {
	raw := f.Get("order")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.NewInvalidInput("order must be a positive number", err)
	}
	return n, nil
}

func (b faqBackend) Get(ctx context.Context, id string) (*faq.FAQ, error) {
	return b.uc.GetFAQ(ctx, id)
}

func (b faqBackend) Create(ctx context.Context, f crudflow.Form) (*faq.FAQ, error) {
	order, err := parseOrder(f)
	if err != nil {
		return nil, err
	}
	return b.uc.CreateFAQ(ctx, faq.FAQ{
		Category: f.Get("category"),
		Question: f.Get("question"),
		Answer:   f.Get("answer"),
		Order:    order,
	})
}

func (b faqBackend) Update(ctx context.Context, id string, f crudflow.Form) (*faq.FAQ, error) {
	order, err := parseOrder(f)
	if err != nil {
		return nil, err
	}
	return b.uc.UpdateFAQ(ctx, id, faq.Patch{
		Category: ptr(f.Get("category")),
		Question: ptr(f.Get("question")),
		Answer:   ptr(f.Get("answer")),
		Order:    ptr(order),
	})
}

func (b faqBackend) Delete(ctx context.Context, id string) error {
	return b.uc.DeleteFAQ(ctx, id)
}
