package datamanager

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/domain/about"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/internal/domain/career"
	"github.com/khoahotran/planmoni-site/internal/domain/contact"
	"github.com/khoahotran/planmoni-site/internal/domain/faq"
	"github.com/khoahotran/planmoni-site/internal/domain/jobapplication"
	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/internal/domain/legal"
	"github.com/khoahotran/planmoni-site/internal/domain/press"
	"github.com/khoahotran/planmoni-site/internal/domain/session"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

// Managers is the set of data managers one process works with. It is built
// once at startup and passed to the use cases.
type Managers struct {
	Blog         *Collection[blog.Post]
	Careers      *Collection[career.Position]
	Applications *Collection[jobapplication.Application]
	About        *Document[about.Content]
	FAQs         *Collection[faq.FAQ]
	Privacy      *Document[legal.Page]
	Terms        *Document[legal.Page]
	Press        *Document[press.Kit]
	ContactInfo  *Document[contact.Info]
	Messages     *Collection[contact.Message]
	Activity     *Collection[activity.Entry]
	Sessions     *Collection[session.Session]
}

// Legal picks the document backing a legal page.
func (m *Managers) Legal(k legal.Kind) *Document[legal.Page] {
	if k == legal.KindPrivacy {
		return m.Privacy
	}
	return m.Terms
}

// Open loads every managed document from store, seeding what is missing.
// now may be nil.
func Open(ctx context.Context, store kvstore.Store, log logger.Logger, now func() time.Time) (*Managers, error) {
	m := &Managers{}
	var err error

	if m.Blog, err = NewCollection(ctx, store, log, CollectionOptions[blog.Post]{
		Key: blog.StorageKey, Seed: blog.Seed, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("blog posts: %w", err)
	}
	if m.Careers, err = NewCollection(ctx, store, log, CollectionOptions[career.Position]{
		Key: career.StorageKey, Seed: career.Seed, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("job positions: %w", err)
	}
	if m.Applications, err = NewCollection(ctx, store, log, CollectionOptions[jobapplication.Application]{
		Key: jobapplication.StorageKey, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("job applications: %w", err)
	}
	if m.About, err = NewDocument(ctx, store, log, DocumentOptions[about.Content]{
		Key: about.StorageKey, Seed: about.Seed, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("about page: %w", err)
	}
	if m.FAQs, err = NewCollection(ctx, store, log, CollectionOptions[faq.FAQ]{
		Key: faq.StorageKey, Seed: faq.Seed, Append: true, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("faqs: %w", err)
	}
	if m.Privacy, err = NewDocument(ctx, store, log, DocumentOptions[legal.Page]{
		Key: legal.KindPrivacy.StorageKey(), Seed: legal.SeedPrivacy, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("privacy policy: %w", err)
	}
	if m.Terms, err = NewDocument(ctx, store, log, DocumentOptions[legal.Page]{
		Key: legal.KindTerms.StorageKey(), Seed: legal.SeedTerms, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("terms of service: %w", err)
	}
	if m.Press, err = NewDocument(ctx, store, log, DocumentOptions[press.Kit]{
		Key: press.StorageKey, Seed: press.Seed, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("press kit: %w", err)
	}
	if m.ContactInfo, err = NewDocument(ctx, store, log, DocumentOptions[contact.Info]{
		Key: contact.InfoStorageKey, Seed: contact.SeedInfo, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("contact info: %w", err)
	}
	if m.Messages, err = NewCollection(ctx, store, log, CollectionOptions[contact.Message]{
		Key: contact.MessagesStorageKey, Seed: contact.SeedMessages, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("contact messages: %w", err)
	}
	if m.Activity, err = NewCollection(ctx, store, log, CollectionOptions[activity.Entry]{
		Key: activity.StorageKey, Limit: activity.MaxEntries, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("activity log: %w", err)
	}
	if m.Sessions, err = NewCollection(ctx, store, log, CollectionOptions[session.Session]{
		Key: session.StorageKey, Now: now,
	}); err != nil {
		return nil, fmt.Errorf("admin sessions: %w", err)
	}

	log.Info("Content managers loaded",
		zap.String("blog", string(m.Blog.Status())),
		zap.String("careers", string(m.Careers.Status())),
		zap.String("applications", string(m.Applications.Status())),
		zap.String("about", string(m.About.Status())),
		zap.Int("posts", m.Blog.Len()),
		zap.Int("positions", m.Careers.Len()),
	)
	return m, nil
}
