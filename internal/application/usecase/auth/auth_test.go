package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/planmoni-site/adapters/persistence"
	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/domain/session"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/auth"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	sessions *datamanager.Collection[session.Session]
	uc       *AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	sessions, err := datamanager.NewCollection(s.ctx, persistence.NewMemoryKVStore(), logger.NewNopLogger(),
		datamanager.CollectionOptions[session.Session]{Key: session.StorageKey})
	s.Require().NoError(err)
	s.sessions = sessions

	creds, err := ResolveCredentials(Credentials{Username: "admin"}, logger.NewNopLogger())
	s.Require().NoError(err)
	s.uc = NewAuthUseCase(creds, auth.NewJWTService("test-secret", time.Hour), sessions, logger.NewNopLogger())
}

func (s *AuthUseCaseTestSuite) TestLogin_DemoCredentials() {
	out, err := s.uc.Login(s.ctx, LoginInput{Username: "admin", Password: DemoPassword})
	s.Require().NoError(err)
	s.NotEmpty(out.AccessToken)
	s.Equal("admin", out.Username)
	s.Equal(1, s.sessions.Len())

	claims, err := s.uc.Authenticate(s.ctx, out.AccessToken)
	s.Require().NoError(err)
	s.Equal("admin", claims.Username)
}

func (s *AuthUseCaseTestSuite) TestLogin_Rejected() {
	_, err := s.uc.Login(s.ctx, LoginInput{Username: "admin", Password: "nope"})
	s.True(errors.Is(err, apperror.ErrUnauthorized))

	_, err = s.uc.Login(s.ctx, LoginInput{Username: "root", Password: DemoPassword})
	s.True(errors.Is(err, apperror.ErrUnauthorized))
	s.Equal(0, s.sessions.Len())
}

func (s *AuthUseCaseTestSuite) TestLogin_HonoursDelayAndContext() {
	s.uc.creds.LoginDelay = 50 * time.Millisecond

	start := time.Now()
	_, err := s.uc.Login(s.ctx, LoginInput{Username: "admin", Password: "nope"})
	s.Error(err)
	s.GreaterOrEqual(time.Since(start), 50*time.Millisecond)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = s.uc.Login(ctx, LoginInput{Username: "admin", Password: DemoPassword})
	s.ErrorIs(err, context.Canceled)
}

func (s *AuthUseCaseTestSuite) TestLogout_RevokesSession() {
	out, err := s.uc.Login(s.ctx, LoginInput{Username: "admin", Password: DemoPassword})
	s.Require().NoError(err)
	claims, err := s.uc.Authenticate(s.ctx, out.AccessToken)
	s.Require().NoError(err)

	s.Require().NoError(s.uc.Logout(s.ctx, claims.SessionID))
	s.Require().NoError(s.uc.Logout(s.ctx, claims.SessionID))

	_, err = s.uc.Authenticate(s.ctx, out.AccessToken)
	s.True(errors.Is(err, apperror.ErrUnauthorized))
}

func (s *AuthUseCaseTestSuite) TestAuthenticate_ExpiredSession() {
	out, err := s.uc.Login(s.ctx, LoginInput{Username: "admin", Password: DemoPassword})
	s.Require().NoError(err)

	s.uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = s.uc.Authenticate(s.ctx, out.AccessToken)
	s.True(errors.Is(err, apperror.ErrUnauthorized))
}

func (s *AuthUseCaseTestSuite) TestLogin_PrunesExpiredSessions() {
	_, err := s.sessions.Add(s.ctx, session.Session{
		ID: "stale", Username: "admin",
		CreatedAt: time.Now().Add(-48 * time.Hour), ExpiresAt: time.Now().Add(-24 * time.Hour),
	})
	s.Require().NoError(err)

	_, err = s.uc.Login(s.ctx, LoginInput{Username: "admin", Password: DemoPassword})
	s.Require().NoError(err)

	_, ok := s.sessions.GetByID("stale")
	s.False(ok)
	s.Equal(1, s.sessions.Len())
}

func (s *AuthUseCaseTestSuite) TestAuthenticate_Garbage() {
	_, err := s.uc.Authenticate(s.ctx, "not-a-token")
	s.True(errors.Is(err, apperror.ErrUnauthorized))
}

func TestAuthUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}
