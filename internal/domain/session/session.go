package session

import (
	"context"
	"errors"
	"time"
)

const StorageKey = "planmoni-admin-sessions"

// Session is an issued admin login. Its ID is the JWT id claim.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

var ErrSessionNotFound = errors.New("session not found or revoked")

func (s Session) GetID() string { return s.ID }

// WithID keeps the token id; sessions are keyed by jti, not by a generated id.
func (s Session) WithID(id string) Session {
	if s.ID == "" {
		s.ID = id
	}
	return s
}

func (s Session) Clone() Session { return s }

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type Repository interface {
	All() []Session
	GetByID(id string) (Session, bool)
	Filter(keep func(Session) bool) []Session
	Add(ctx context.Context, s Session) (Session, error)
	Delete(ctx context.Context, id string) (bool, error)
	ReplaceAll(ctx context.Context, items []Session) error
}
