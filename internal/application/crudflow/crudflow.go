// Package crudflow is the admin create/edit/view/delete screen as a state
// machine. A Screen never calls its backend with a form that is missing a
// required field, and a delete only reaches the backend after an explicit
// confirmation.
package crudflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/domain/content"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type State string

const (
	StateIdle          State = "idle"
	StateCreateOpen    State = "create-open"
	StateEditOpen      State = "edit-open"
	StateViewOpen      State = "view-open"
	StateSubmitting    State = "submitting"
	StateConfirmDelete State = "confirm-delete"
)

var ErrInvalidTransition = errors.New("invalid screen transition")

// Form holds the raw values typed into the screen, keyed by field name.
type Form map[string]string

func (f Form) Get(name string) string { return strings.TrimSpace(f[name]) }

// Lines splits a multi-line value on "|" or newlines and drops blank entries.
func (f Form) Lines(name string) []string {
	raw := strings.NewReplacer("|", "\n").Replace(f[name])
	return content.CleanLines(strings.Split(raw, "\n"))
}

func (f Form) clone() Form {
	out := make(Form, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

type Field struct {
	Name     string
	Label    string
	Required bool
}

// Backend is the data manager side of a screen.
type Backend[R any] interface {
	Get(ctx context.Context, id string) (*R, error)
	Create(ctx context.Context, form Form) (*R, error)
	Update(ctx context.Context, id string, form Form) (*R, error)
	Delete(ctx context.Context, id string) error
}

type Screen[R any] struct {
	name    string
	fields  []Field
	backend Backend[R]
	toForm  func(R) Form
	logger  logger.Logger

	state     State
	openState State
	targetID  string
	form      Form
	viewing   *R
	lastErr   error
}

func NewScreen[R any](name string, fields []Field, b Backend[R], toForm func(R) Form, log logger.Logger) *Screen[R] {
	return &Screen[R]{name: name, fields: fields, backend: b, toForm: toForm, logger: log, state: StateIdle}
}

func (s *Screen[R]) State() State { return s.state }

func (s *Screen[R]) Form() Form { return s.form.clone() }

func (s *Screen[R]) Fields() []Field { return s.fields }

func (s *Screen[R]) Viewing() *R { return s.viewing }

// Err is the error shown on the open screen, cleared on the next transition.
func (s *Screen[R]) Err() error { return s.lastErr }

func (s *Screen[R]) transition(from []State, to State) error {
	for _, f := range from {
		if s.state == f {
			s.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
}

func (s *Screen[R]) OpenCreate() error {
	if err := s.transition([]State{StateIdle}, StateCreateOpen); err != nil {
		return err
	}
	s.openState, s.targetID, s.form, s.lastErr = StateCreateOpen, "", Form{}, nil
	return nil
}

// OpenEdit loads the record and pre-fills the form with its values.
func (s *Screen[R]) OpenEdit(ctx context.Context, id string) error {
	if s.state != StateIdle {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, StateEditOpen)
	}
	rec, err := s.backend.Get(ctx, id)
	if err != nil {
		return err
	}
	s.state, s.openState, s.targetID, s.lastErr = StateEditOpen, StateEditOpen, id, nil
	s.form = s.toForm(*rec)
	return nil
}

func (s *Screen[R]) OpenView(ctx context.Context, id string) error {
	if s.state != StateIdle {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, StateViewOpen)
	}
	rec, err := s.backend.Get(ctx, id)
	if err != nil {
		return err
	}
	s.state, s.targetID, s.viewing, s.lastErr = StateViewOpen, id, rec, nil
	return nil
}

// Close abandons whatever is open without touching the backend.
func (s *Screen[R]) Close() {
	s.state, s.openState, s.targetID, s.form, s.viewing = StateIdle, "", "", nil, nil
}

func (s *Screen[R]) Set(name, value string) error {
	if s.state != StateCreateOpen && s.state != StateEditOpen {
		return fmt.Errorf("%w: cannot edit fields in %s", ErrInvalidTransition, s.state)
	}
	s.form[name] = value
	return nil
}

func (s *Screen[R]) missing() []string {
	var names []string
	for _, f := range s.fields {
		if f.Required && s.form.Get(f.Name) == "" {
			names = append(names, f.Name)
		}
	}
	return names
}

// Submit validates required fields, then hands the form to the backend.
// Any failure returns the screen to the open form with Err set.
func (s *Screen[R]) Submit(ctx context.Context) (*R, error) {
	if err := s.transition([]State{StateCreateOpen, StateEditOpen}, StateSubmitting); err != nil {
		return nil, err
	}

	if missing := s.missing(); len(missing) > 0 {
		return nil, s.fail(apperror.NewMissingFields(missing...))
	}

	var (
		rec *R
		err error
	)
	if s.openState == StateCreateOpen {
		rec, err = s.backend.Create(ctx, s.form.clone())
	} else {
		rec, err = s.backend.Update(ctx, s.targetID, s.form.clone())
	}
	if err != nil {
		return nil, s.fail(err)
	}

	s.logger.Debug("Screen submitted", zap.String("screen", s.name), zap.String("mode", string(s.openState)))
	s.Close()
	s.lastErr = nil
	return rec, nil
}

func (s *Screen[R]) fail(err error) error {
	s.state = s.openState
	s.lastErr = err
	return err
}

func (s *Screen[R]) RequestDelete(id string) error {
	if err := s.transition([]State{StateIdle, StateViewOpen}, StateConfirmDelete); err != nil {
		return err
	}
	s.targetID, s.lastErr = id, nil
	return nil
}

// ResolveDelete answers the confirmation. Declining leaves the record alone.
func (s *Screen[R]) ResolveDelete(ctx context.Context, confirmed bool) error {
	if s.state != StateConfirmDelete {
		return fmt.Errorf("%w: no delete awaiting confirmation", ErrInvalidTransition)
	}
	id := s.targetID
	s.Close()
	if !confirmed {
		return nil
	}
	if err := s.backend.Delete(ctx, id); err != nil {
		s.lastErr = err
		return err
	}
	s.logger.Info("Record deleted", zap.String("screen", s.name), zap.String("id", id))
	return nil
}
