package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/pkg/logger"
	"github.com/khoahotran/planmoni-site/pkg/markdown"
)

const feedLimit = 20

type FeedInfo struct {
	Title       string
	Description string
	BaseURL     string
	Author      string
}

type RSSUseCase struct {
	repo   blog.Repository
	info   FeedInfo
	logger logger.Logger
	now    func() time.Time
}

func NewRSSUseCase(r blog.Repository, info FeedInfo, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{repo: r, info: info, logger: log, now: time.Now}
}

func (uc *RSSUseCase) Execute(_ context.Context) (*feeds.Feed, error) {
	uc.logger.Debug("Generating RSS feed...")

	base := strings.TrimSuffix(uc.info.BaseURL, "/")
	feed := &feeds.Feed{
		Title:       uc.info.Title,
		Link:        &feeds.Link{Href: base + "/blog"},
		Description: uc.info.Description,
		Author:      &feeds.Author{Name: uc.info.Author},
		Created:     uc.now(),
	}

	posts := uc.repo.Filter(func(p blog.Post) bool { return p.Status == blog.StatusPublished })
	if len(posts) > feedLimit {
		posts = posts[:feedLimit]
	}

	items := make([]*feeds.Item, 0, len(posts))
	for _, p := range posts {
		item := &feeds.Item{
			Id:          p.ID,
			Title:       p.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/blog/%s", base, p.Slug)},
			Description: p.Excerpt,
			Author:      &feeds.Author{Name: p.Author},
			Created:     uc.now(),
		}
		if t, err := time.Parse(datamanager.DateLayout, p.Date); err == nil {
			item.Created = t
		}
		if body := p.Body(); body != "" {
			html, err := markdown.ToHTML(body)
			if err != nil {
				uc.logger.Warn("Failed to render post for RSS", zap.String("post_id", p.ID), zap.Error(err))
			} else {
				item.Content = html
			}
		}
		items = append(items, item)
	}

	feed.Items = items
	uc.logger.Info("RSS feed generated successfully", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
