package crudflow

import (
	"context"
	"errors"

	"github.com/khoahotran/planmoni-site/pkg/apperror"
)

// ErrAborted is returned by a Prompter when the user cancels.
var ErrAborted = errors.New("aborted")

type Prompter interface {
	Ask(label, current string, required bool) (string, error)
	Confirm(label string) (bool, error)
	Notify(msg string)
}

// RunCreate walks the create form until it submits or the user aborts.
func (s *Screen[R]) RunCreate(ctx context.Context, p Prompter) (*R, error) {
	if err := s.OpenCreate(); err != nil {
		return nil, err
	}
	return s.fillAndSubmit(ctx, p)
}

func (s *Screen[R]) RunEdit(ctx context.Context, p Prompter, id string) (*R, error) {
	if err := s.OpenEdit(ctx, id); err != nil {
		return nil, err
	}
	return s.fillAndSubmit(ctx, p)
}

// fillAndSubmit re-prompts after a validation error; any other backend
// error ends the run.
func (s *Screen[R]) fillAndSubmit(ctx context.Context, p Prompter) (*R, error) {
	for {
		for _, f := range s.fields {
			v, err := p.Ask(f.Label, s.form[f.Name], f.Required)
			if err != nil {
				s.Close()
				return nil, err
			}
			if err := s.Set(f.Name, v); err != nil {
				return nil, err
			}
		}

		rec, err := s.Submit(ctx)
		if err == nil {
			return rec, nil
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(err, apperror.ErrInvalidInput) {
			p.Notify(appErr.Message + " (" + appErr.Details + ")")
			continue
		}
		s.Close()
		return nil, err
	}
}

// RunDelete asks for confirmation and reports whether the record was removed.
func (s *Screen[R]) RunDelete(ctx context.Context, p Prompter, id string) (bool, error) {
	if err := s.RequestDelete(id); err != nil {
		return false, err
	}
	ok, err := p.Confirm("Delete " + s.name + " " + id)
	if err != nil && !errors.Is(err, ErrAborted) {
		s.Close()
		return false, err
	}
	if err := s.ResolveDelete(ctx, ok && err == nil); err != nil {
		return false, err
	}
	return ok && err == nil, nil
}
