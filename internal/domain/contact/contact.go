package contact

import (
	"context"
	"errors"

	"github.com/khoahotran/planmoni-site/internal/domain/content"
)

const (
	InfoStorageKey     = "planmoni-contact-info"
	MessagesStorageKey = "planmoni-contact-messages"
)

type Info struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	BusinessHours string `json:"business_hours"`
	SupportHours  string `json:"support_hours"`
}

func (i Info) Clone() Info { return i }

type InfoPatch struct {
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	BusinessHours *string `json:"business_hours"`
	SupportHours  *string `json:"support_hours"`
}

func (pt InfoPatch) Apply(i *Info) {
	if pt.Email != nil {
		i.Email = *pt.Email
	}
	if pt.Phone != nil {
		i.Phone = *pt.Phone
	}
	if pt.Address != nil {
		i.Address = *pt.Address
	}
	if pt.BusinessHours != nil {
		i.BusinessHours = *pt.BusinessHours
	}
	if pt.SupportHours != nil {
		i.SupportHours = *pt.SupportHours
	}
}

type Status string

const (
	StatusNew      Status = "new"
	StatusReplied  Status = "replied"
	StatusResolved Status = "resolved"
)

var Categories = []string{"general", "support", "billing", "feature", "partnership", "press"}

type Message struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Status   Status `json:"status"`
	Reply    string `json:"reply,omitempty"`
}

var (
	ErrMessageNotFound = errors.New("contact message not found")
	ErrInvalidStatus   = errors.New("invalid message status")
	ErrEmptyReply      = errors.New("reply text is empty")
)

func (m Message) GetID() string { return m.ID }

func (m Message) WithID(id string) Message {
	m.ID = id
	return m
}

func (m Message) Clone() Message { return m }

func (m *Message) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "name", Value: m.Name},
		content.Field{Name: "email", Value: m.Email},
		content.Field{Name: "subject", Value: m.Subject},
		content.Field{Name: "message", Value: m.Message},
	)
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusReplied, StatusResolved:
		return true
	}
	return false
}

type Filter struct {
	Status Status
	Query  string
}

func (f Filter) Match(m Message) bool {
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	return content.MatchesQuery(f.Query, m.Name, m.Email, m.Subject, m.Message)
}

type InfoRepository interface {
	Get() Info
	Update(ctx context.Context, mutate func(*Info) error) (Info, error)
	Replace(ctx context.Context, i Info) error
}

type MessageRepository interface {
	All() []Message
	GetByID(id string) (Message, bool)
	Filter(keep func(Message) bool) []Message
	Add(ctx context.Context, m Message) (Message, error)
	Update(ctx context.Context, id string, mutate func(*Message)) (Message, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

func SeedInfo() Info {
	return Info{
		Email:         "support@planmoni.com",
		Phone:         "+234 (0) 800 PLANMONI",
		Address:       "Lagos, Nigeria",
		BusinessHours: "Monday - Friday, 9AM - 6PM WAT",
		SupportHours:  "Weekend support via email",
	}
}

func SeedMessages() []Message {
	return []Message{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Subject: "Question about payout schedules", Category: "general", Message: "I would like to know more about how flexible the payout schedules are...", Date: "2025-01-15", Status: StatusNew},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Subject: "Technical issue with app", Category: "support", Message: "I am experiencing issues logging into my account...", Date: "2025-01-14", Status: StatusReplied},
		{ID: "3", Name: "Mike Johnson", Email: "mike@example.com", Subject: "Partnership inquiry", Category: "partnership", Message: "We are interested in exploring a partnership opportunity...", Date: "2025-01-13", Status: StatusResolved},
	}
}
