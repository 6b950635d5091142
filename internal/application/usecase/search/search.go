package search

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/internal/domain/career"
	"github.com/khoahotran/planmoni-site/internal/domain/faq"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

const (
	TypePost     = "blog_post"
	TypePosition = "job_position"
	TypeFAQ      = "faq"

	defaultLimit = 10
	snippetLen   = 160
)

type Result struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Path    string `json:"path"`
}

type SearchUseCase struct {
	posts     blog.Repository
	positions career.Repository
	faqs      faq.Repository
	logger    logger.Logger
}

func NewSearchUseCase(posts blog.Repository, positions career.Repository, faqs faq.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{posts: posts, positions: positions, faqs: faqs, logger: log}
}

type SearchInput struct {
	Query string
	Limit int
}

type SearchOutput struct {
	Results []Result `json:"results"`
}

// Execute searches public content only: published posts, active positions
// and FAQs, in that order.
func (uc *SearchUseCase) Execute(_ context.Context, input SearchInput) (*SearchOutput, error) {
	q := strings.TrimSpace(input.Query)
	if q == "" {
		return &SearchOutput{Results: []Result{}}, nil
	}
	if input.Limit <= 0 {
		input.Limit = defaultLimit
	}

	uc.logger.Info("Executing public search", zap.String("query", q))
	results := make([]Result, 0, input.Limit)

	for _, p := range uc.posts.Filter(blog.Filter{Status: blog.StatusPublished, Query: q}.Match) {
		results = append(results, Result{Type: TypePost, ID: p.ID, Title: p.Title, Snippet: snippet(p.Excerpt), Path: "/blog/" + p.Slug})
	}
	for _, p := range uc.positions.Filter(career.Filter{Status: career.StatusActive, Query: q}.Match) {
		results = append(results, Result{Type: TypePosition, ID: p.ID, Title: p.Title, Snippet: snippet(p.Description), Path: "/careers/" + p.ID})
	}
	for _, f := range uc.faqs.Filter(faq.Filter{Query: q}.Match) {
		results = append(results, Result{Type: TypeFAQ, ID: f.ID, Title: f.Question, Snippet: snippet(f.Answer), Path: "/help#faq-" + f.ID})
	}

	if len(results) > input.Limit {
		results = results[:input.Limit]
	}
	return &SearchOutput{Results: results}, nil
}

func snippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= snippetLen {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:snippetLen])) + "…"
}
