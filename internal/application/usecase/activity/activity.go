package activity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/internal/domain/career"
	"github.com/khoahotran/planmoni-site/internal/domain/contact"
	"github.com/khoahotran/planmoni-site/internal/domain/faq"
	"github.com/khoahotran/planmoni-site/internal/domain/jobapplication"
	"github.com/khoahotran/planmoni-site/internal/domain/press"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

const defaultRecent = 10

// Sources are the managers the dashboard counts over.
type Sources struct {
	Posts        blog.Repository
	Positions    career.Repository
	Applications jobapplication.Repository
	FAQs         faq.Repository
	Press        press.Repository
	Messages     contact.MessageRepository
}

type ActivityUseCase struct {
	repo    activity.Repository
	sources Sources
	logger  logger.Logger
	shared  bool
}

type reloader interface {
	Reload(ctx context.Context) error
}

func NewActivityUseCase(r activity.Repository, sources Sources, log logger.Logger) *ActivityUseCase {
	return &ActivityUseCase{repo: r, sources: sources, logger: log}
}

// SharedLog marks the activity log as written by another process (the Kafka
// worker), so reads refresh it from the store first.
func (uc *ActivityUseCase) SharedLog() *ActivityUseCase {
	uc.shared = true
	return uc
}

// Record stores one content event. It is the sink of both the in-process
// publisher and the Kafka consumer.
func (uc *ActivityUseCase) Record(ctx context.Context, e activity.Event) error {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	entry, err := uc.repo.Add(ctx, activity.Entry{Event: e})
	if err != nil {
		uc.logger.Error("Failed to record activity", err, zap.String("entity", e.Entity), zap.String("entity_id", e.EntityID))
		return err
	}
	uc.logger.Debug("Activity recorded", zap.String("id", entry.ID), zap.String("entity", e.Entity), zap.String("action", string(e.Action)))
	return nil
}

// Recent returns the newest n entries; n <= 0 means the default.
func (uc *ActivityUseCase) Recent(ctx context.Context, n int) []activity.Entry {
	if n <= 0 {
		n = defaultRecent
	}
	if r, ok := uc.repo.(reloader); ok && uc.shared {
		if err := r.Reload(ctx); err != nil {
			uc.logger.Warn("Activity log reload failed, serving cached entries", zap.Error(err))
		}
	}
	all := uc.repo.All()
	if len(all) > n {
		all = all[:n]
	}
	return all
}

type Counts struct {
	BlogPosts           int `json:"blog_posts"`
	PublishedPosts      int `json:"published_posts"`
	OpenPositions       int `json:"open_positions"`
	PressReleases       int `json:"press_releases"`
	HelpArticles        int `json:"help_articles"`
	PendingApplications int `json:"pending_applications"`
	NewMessages         int `json:"new_messages"`
}

type Dashboard struct {
	Counts         Counts           `json:"counts"`
	RecentActivity []activity.Entry `json:"recent_activity"`
}

func (uc *ActivityUseCase) Dashboard(ctx context.Context, recent int) Dashboard {
	var c Counts
	s := uc.sources
	if s.Posts != nil {
		posts := s.Posts.All()
		c.BlogPosts = len(posts)
		for _, p := range posts {
			if p.Status == blog.StatusPublished {
				c.PublishedPosts++
			}
		}
	}
	if s.Positions != nil {
		c.OpenPositions = len(s.Positions.Filter(career.Filter{Status: career.StatusActive}.Match))
	}
	if s.Press != nil {
		c.PressReleases = len(s.Press.Get().News)
	}
	if s.FAQs != nil {
		c.HelpArticles = len(s.FAQs.All())
	}
	if s.Applications != nil {
		c.PendingApplications = len(s.Applications.Filter(jobapplication.Filter{Status: jobapplication.StatusPending}.Match))
	}
	if s.Messages != nil {
		c.NewMessages = len(s.Messages.Filter(contact.Filter{Status: contact.StatusNew}.Match))
	}

	return Dashboard{Counts: c, RecentActivity: uc.Recent(ctx, recent)}
}
