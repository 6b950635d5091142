package blog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/planmoni-site/adapters/persistence"
	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type spyPublisher struct {
	mu     sync.Mutex
	events []activity.Event
}

func (s *spyPublisher) Publish(_ context.Context, e activity.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *spyPublisher) Close() error { return nil }

func (s *spyPublisher) Events() []activity.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]activity.Event(nil), s.events...)
}

type BlogUseCaseTestSuite struct {
	suite.Suite
	ctx   context.Context
	repo  *datamanager.Collection[blog.Post]
	spy   *spyPublisher
	uc    *BlogUseCase
	today time.Time
}

func (s *BlogUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.today = time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)

	repo, err := datamanager.NewCollection(s.ctx, persistence.NewMemoryKVStore(), logger.NewNopLogger(),
		datamanager.CollectionOptions[blog.Post]{Key: blog.StorageKey, Seed: blog.Seed})
	s.Require().NoError(err)
	s.repo = repo

	s.spy = &spyPublisher{}
	s.uc = NewBlogUseCase(repo, s.spy, logger.NewNopLogger())
	s.uc.now = func() time.Time { return s.today }
}

func (s *BlogUseCaseTestSuite) TestCreatePost_DerivesFields() {
	p, err := s.uc.CreatePost(s.ctx, CreatePostInput{
		Title:    "Budgeting for Freelancers 101",
		Excerpt:  "Irregular income, regular bills.",
		Author:   "Chinedu Okoro",
		Category: "Freelancing",
		ReadTime: "4 min read",
	})
	s.Require().NoError(err)

	s.Equal("budgeting-for-freelancers-101", p.Slug)
	s.Equal("2025-02-03", p.Date)
	s.Equal(blog.StatusDraft, p.Status)
	s.Nil(p.Content)
	s.Equal(p.ID, s.repo.All()[0].ID)

	s.Eventually(func() bool { return len(s.spy.Events()) == 1 }, time.Second, 10*time.Millisecond)
	e := s.spy.Events()[0]
	s.Equal(activity.EntityBlogPost, e.Entity)
	s.Equal(activity.ActionCreated, e.Action)
	s.Equal(p.ID, e.EntityID)
}

func (s *BlogUseCaseTestSuite) TestCreatePost_MissingFieldsDoesNotTouchManager() {
	_, err := s.uc.CreatePost(s.ctx, CreatePostInput{Title: "Only a title"})

	s.Require().Error(err)
	s.True(errors.Is(err, apperror.ErrInvalidInput))
	var appErr *apperror.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal("Please fill in all required fields", appErr.Message)
	s.Len(s.repo.All(), 3)
}

func (s *BlogUseCaseTestSuite) TestCreatePost_RejectsUnknownStatus() {
	_, err := s.uc.CreatePost(s.ctx, CreatePostInput{
		Title: "t", Excerpt: "e", Author: "a", Category: "Savings", Status: "archived",
	})
	s.True(errors.Is(err, apperror.ErrInvalidInput))
}

func (s *BlogUseCaseTestSuite) TestUpdatePost_EmptySlugIsRegenerated() {
	title := "New Title"
	empty := ""
	p, err := s.uc.UpdatePost(s.ctx, "2", blog.Patch{Title: &title, Slug: &empty})
	s.Require().NoError(err)

	s.Equal("new-title", p.Slug)
	s.Equal("Adebayo Ogundimu", p.Author)
}

func (s *BlogUseCaseTestSuite) TestUpdatePost_SlugLeftAloneWithoutExplicitPatch() {
	_, _, err := s.repo.Update(s.ctx, "2", func(p *blog.Post) { p.Slug = "" })
	s.Require().NoError(err)

	title := "Renamed Without Slug"
	p, err := s.uc.UpdatePost(s.ctx, "2", blog.Patch{Title: &title})
	s.Require().NoError(err)
	s.Equal("Renamed Without Slug", p.Title)
	s.Empty(p.Slug)

	stored, ok := s.repo.GetByID("2")
	s.Require().True(ok)
	s.Empty(stored.Slug)
}

func (s *BlogUseCaseTestSuite) TestUpdatePost_ClearingRequiredFieldFails() {
	blank := " "
	_, err := s.uc.UpdatePost(s.ctx, "1", blog.Patch{Author: &blank})
	s.True(errors.Is(err, apperror.ErrInvalidInput))

	p, _ := s.repo.GetByID("1")
	s.Equal("Dr. Kemi Adebisi", p.Author)
}

func (s *BlogUseCaseTestSuite) TestUpdateAndDelete_UnknownID() {
	title := "x"
	_, err := s.uc.UpdatePost(s.ctx, "404", blog.Patch{Title: &title})
	s.True(errors.Is(err, apperror.ErrNotFound))

	err = s.uc.DeletePost(s.ctx, "404")
	s.True(errors.Is(err, apperror.ErrNotFound))
}

func (s *BlogUseCaseTestSuite) TestPublicReads() {
	draft := blog.StatusDraft
	_, err := s.uc.UpdatePost(s.ctx, "3", blog.Patch{Status: &draft})
	s.Require().NoError(err)

	s.Len(s.uc.ListPublished(s.ctx, "", ""), 2)

	_, err = s.uc.GetPublishedPost(s.ctx, "sustainable-emergency-fund")
	s.True(errors.Is(err, apperror.ErrNotFound))

	p, err := s.uc.GetPublishedPost(s.ctx, "cash-flow-management-signs")
	s.Require().NoError(err)
	s.Equal("2", p.ID)

	featured, ok := s.uc.Featured(s.ctx)
	s.Require().True(ok)
	s.Equal("1", featured.ID)

	counts := s.uc.CategoryCounts(s.ctx)
	s.Equal(CategoryCount{Category: "Psychology", Count: 1}, counts[0])
	s.Equal(CategoryCount{Category: "Savings", Count: 0}, counts[2])
}

func (s *BlogUseCaseTestSuite) TestDeletePost() {
	s.Require().NoError(s.uc.DeletePost(s.ctx, "1"))
	s.Len(s.repo.All(), 2)
}

func TestBlogUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(BlogUseCaseTestSuite))
}

func TestRSSUseCase(t *testing.T) {
	ctx := context.Background()
	repo, err := datamanager.NewCollection(ctx, persistence.NewMemoryKVStore(), logger.NewNopLogger(),
		datamanager.CollectionOptions[blog.Post]{Key: blog.StorageKey, Seed: blog.Seed})
	require.NoError(t, err)

	_, _, err = repo.Update(ctx, "2", func(p *blog.Post) { p.Status = blog.StatusDraft })
	require.NoError(t, err)

	uc := NewRSSUseCase(repo, FeedInfo{Title: "Planmoni Blog", BaseURL: "https://planmoni.com/"}, logger.NewNopLogger())
	feed, err := uc.Execute(ctx)
	require.NoError(t, err)

	require.Len(t, feed.Items, 2)
	assert.Equal(t, "https://planmoni.com/blog/psychology-financial-discipline", feed.Items[0].Link.Href)
	assert.Equal(t, 2025, feed.Items[0].Created.Year())
	assert.Contains(t, feed.Items[0].Content, "<h2")

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.Contains(t, rss, "<title>Planmoni Blog</title>")
}
