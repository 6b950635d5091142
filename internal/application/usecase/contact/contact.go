package contact

import (
	"context"
	"strings"
	"time"

	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/contact"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type ContactUseCase struct {
	info      contact.InfoRepository
	messages  contact.MessageRepository
	publisher activity.Publisher
	logger    logger.Logger
	now       func() time.Time
}

func NewContactUseCase(info contact.InfoRepository, messages contact.MessageRepository, pub activity.Publisher, log logger.Logger) *ContactUseCase {
	return &ContactUseCase{info: info, messages: messages, publisher: pub, logger: log, now: time.Now}
}

func (uc *ContactUseCase) GetInfo(_ context.Context) contact.Info {
	return uc.info.Get()
}

func (uc *ContactUseCase) UpdateInfo(ctx context.Context, patch contact.InfoPatch) (*contact.Info, error) {
	info, err := uc.info.Update(ctx, func(i *contact.Info) error {
		patch.Apply(i)
		if strings.TrimSpace(i.Email) == "" {
			return apperror.NewMissingFields("email")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.emit(activity.EntityContactInfo, activity.ActionUpdated, contact.InfoStorageKey, "Contact information")
	return &info, nil
}

type SubmitMessageInput struct {
	Name     string
	Email    string
	Subject  string
	Category string
	Message  string
}

// SubmitMessage stores a message from the public contact form.
func (uc *ContactUseCase) SubmitMessage(ctx context.Context, in SubmitMessageInput) (*contact.Message, error) {
	m := contact.Message{
		Name:     in.Name,
		Email:    in.Email,
		Subject:  in.Subject,
		Category: in.Category,
		Message:  in.Message,
		Date:     datamanager.FormatDate(uc.now()),
		Status:   contact.StatusNew,
	}
	if m.Category == "" {
		m.Category = contact.Categories[0]
	}
	if missing := m.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}

	created, err := uc.messages.Add(ctx, m)
	if err != nil {
		return nil, err
	}

	uc.emit(activity.EntityMessage, activity.ActionCreated, created.ID, created.Subject)
	return &created, nil
}

func (uc *ContactUseCase) ListMessages(_ context.Context, f contact.Filter) []contact.Message {
	return uc.messages.Filter(f.Match)
}

func (uc *ContactUseCase) GetMessage(_ context.Context, id string) (*contact.Message, error) {
	m, ok := uc.messages.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFound("contact message", id)
	}
	return &m, nil
}

func (uc *ContactUseCase) SetStatus(ctx context.Context, id string, status contact.Status) (*contact.Message, error) {
	if !contact.ValidStatus(status) {
		return nil, apperror.NewInvalidInput("message status validation failed", contact.ErrInvalidStatus)
	}
	return uc.updateMessage(ctx, id, func(m *contact.Message) { m.Status = status })
}

// Reply records the admin's answer and marks the message replied.
func (uc *ContactUseCase) Reply(ctx context.Context, id, text string) (*contact.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.NewInvalidInput("reply validation failed", contact.ErrEmptyReply)
	}
	return uc.updateMessage(ctx, id, func(m *contact.Message) {
		m.Reply = text
		m.Status = contact.StatusReplied
	})
}

func (uc *ContactUseCase) updateMessage(ctx context.Context, id string, mutate func(*contact.Message)) (*contact.Message, error) {
	updated, found, err := uc.messages.Update(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewNotFound("contact message", id)
	}

	uc.emit(activity.EntityMessage, activity.ActionUpdated, updated.ID, updated.Subject)
	return &updated, nil
}

func (uc *ContactUseCase) DeleteMessage(ctx context.Context, id string) error {
	current, ok := uc.messages.GetByID(id)
	if !ok {
		return apperror.NewNotFound("contact message", id)
	}
	removed, err := uc.messages.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("contact message", id)
	}

	uc.emit(activity.EntityMessage, activity.ActionDeleted, current.ID, current.Subject)
	return nil
}

func (uc *ContactUseCase) emit(entity string, action activity.Action, id, title string) {
	service.PublishAsync(uc.publisher, uc.logger, activity.Event{
		Entity:   entity,
		Action:   action,
		EntityID: id,
		Title:    title,
		At:       uc.now().UTC(),
	})
}
