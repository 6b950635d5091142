package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/domain/session"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/auth"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

// DemoPassword is accepted for the admin account when no password hash is
// configured. Never rely on it outside local development.
const DemoPassword = "planmoni2025"

type Credentials struct {
	Username     string
	PasswordHash string
	// LoginDelay is applied to every attempt, successful or not.
	LoginDelay time.Duration
}

// ResolveCredentials fills in the demo password hash when none is set.
func ResolveCredentials(c Credentials, log logger.Logger) (Credentials, error) {
	if c.PasswordHash != "" {
		return c, nil
	}
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return c, err
	}
	log.Warn("ADMIN_PASSWORD_HASH is not set, the demo admin password is active", zap.String("username", c.Username))
	c.PasswordHash = hash
	return c, nil
}

type AuthUseCase struct {
	creds    Credentials
	jwtSvc   *auth.JWTService
	sessions session.Repository
	logger   logger.Logger
	now      func() time.Time
}

func NewAuthUseCase(creds Credentials, jwtSvc *auth.JWTService, sessions session.Repository, log logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		creds:    creds,
		jwtSvc:   jwtSvc,
		sessions: sessions,
		logger:   log,
		now:      time.Now,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	AccessToken string
	Username    string
	ExpiresAt   time.Time
}

var tracer = otel.Tracer("auth_usecase")

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	if uc.creds.LoginDelay > 0 {
		select {
		case <-time.After(uc.creds.LoginDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(uc.creds.Username)) == 1
	passOK := auth.CheckPasswordHash(input.Password, uc.creds.PasswordHash)
	if !userOK || !passOK {
		err := apperror.NewUnauthorized("incorrect username or password", nil)
		span.RecordError(err)
		uc.logger.Warn("Rejected admin login", zap.String("username", input.Username))
		return nil, err
	}

	token, claims, err := uc.jwtSvc.GenerateToken(uc.creds.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("username", uc.creds.Username))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	if err := uc.pruneExpired(ctx); err != nil {
		uc.logger.Warn("Failed to prune expired sessions", zap.Error(err))
	}
	s := session.Session{
		ID:        claims.SessionID,
		Username:  claims.Username,
		CreatedAt: claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if _, err := uc.sessions.Add(ctx, s); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("session_id", s.ID))
	uc.logger.Info("Admin logged in", zap.String("username", s.Username), zap.String("session_id", s.ID))
	return &LoginOutput{AccessToken: token, Username: s.Username, ExpiresAt: s.ExpiresAt}, nil
}

// Authenticate checks the token signature and that its session has not been
// revoked or expired.
func (uc *AuthUseCase) Authenticate(_ context.Context, token string) (*auth.CustomClaims, error) {
	claims, err := uc.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid token", err)
	}
	s, ok := uc.sessions.GetByID(claims.SessionID)
	if !ok {
		return nil, apperror.NewUnauthorized("session revoked", session.ErrSessionNotFound)
	}
	if s.Expired(uc.now()) {
		return nil, apperror.NewUnauthorized("session expired", nil)
	}
	return claims, nil
}

// Logout revokes a session. Revoking an unknown session is not an error.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if _, err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	uc.logger.Info("Admin logged out", zap.String("session_id", sessionID))
	return nil
}

func (uc *AuthUseCase) Session(_ context.Context, sessionID string) (*session.Session, error) {
	s, ok := uc.sessions.GetByID(sessionID)
	if !ok {
		return nil, apperror.NewNotFound("session", sessionID)
	}
	return &s, nil
}

func (uc *AuthUseCase) pruneExpired(ctx context.Context) error {
	now := uc.now()
	live := uc.sessions.Filter(func(s session.Session) bool { return !s.Expired(now) })
	if len(live) == len(uc.sessions.All()) {
		return nil
	}
	return uc.sessions.ReplaceAll(ctx, live)
}
