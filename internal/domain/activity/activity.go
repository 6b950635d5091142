// Package activity records what happened to site content so the dashboard
// can show recent changes.
package activity

import (
	"context"
	"time"
)

const (
	StorageKey = "planmoni-activity-log"
	// MaxEntries bounds the stored log; older entries are dropped.
	MaxEntries = 200
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Entity names used in events and on the dashboard.
const (
	EntityBlogPost    = "blog_post"
	EntityJobPosition = "job_position"
	EntityApplication = "job_application"
	EntityAbout       = "about"
	EntityFAQ         = "faq"
	EntityLegal       = "legal_page"
	EntityPress       = "press_kit"
	EntityContactInfo = "contact_info"
	EntityMessage     = "contact_message"
)

// Event is published after every successful content mutation.
type Event struct {
	Entity   string    `json:"entity"`
	Action   Action    `json:"action"`
	EntityID string    `json:"entity_id"`
	Title    string    `json:"title"`
	At       time.Time `json:"at"`
}

// Entry is an Event as stored in the activity log.
type Entry struct {
	ID string `json:"id"`
	Event
}

func (e Entry) GetID() string { return e.ID }

func (e Entry) WithID(id string) Entry {
	e.ID = id
	return e
}

func (e Entry) Clone() Entry { return e }

// Publisher fans content events out to whoever records them.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type Repository interface {
	All() []Entry
	Add(ctx context.Context, e Entry) (Entry, error)
}
