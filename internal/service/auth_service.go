// Package service holds the application's use cases on top of the repositories.
package service

import (
	"context"
	"errors"

	"pixelgram/internal/auth"
	"pixelgram/internal/cache"
	"pixelgram/internal/middleware"
	"pixelgram/internal/models"
	"pixelgram/internal/observability"
	"pixelgram/internal/repository"
	"pixelgram/internal/session"
	"pixelgram/internal/validation"
)

// msgAuthFailed is the only login failure clients ever see.
const msgAuthFailed = "Authentication failed"

type AuthService struct {
	users    repository.UserRepository
	sessions *session.Manager
	cache    *cache.JSON
}

func NewAuthService(users repository.UserRepository, sessions *session.Manager, c *cache.JSON) *AuthService {
	return &AuthService{users: users, sessions: sessions, cache: c}
}

// Register creates the account and logs it in.
func (s *AuthService) Register(ctx context.Context, cmd validation.Register) (*models.User, *session.Session, error) {
	span, ctx := observability.StartSpan(ctx, "AuthService", "Register")
	user, sess, err := s.register(ctx, cmd)
	span.Finish(err)
	return user, sess, err
}

func (s *AuthService) register(ctx context.Context, cmd validation.Register) (*models.User, *session.Session, error) {
	if _, err := s.users.GetByUsername(ctx, cmd.Username); err == nil {
		return nil, nil, models.NewConflictError("Username already exists")
	} else if !models.IsNotFound(err) {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: cmd.Username,
		Password: hash,
		FullName: cmd.FullName,
		Email:    cmd.Email,
	}
	// The unique index settles races the pre-check above cannot.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}
	s.cache.Invalidate(ctx, cache.DirectoryKey)

	sess, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, nil, models.NewInternalError(err)
	}
	observability.SessionsIssuedTotal.WithLabelValues("register").Inc()
	return user, sess, nil
}

// Login checks the credentials and issues a session. Unknown users and wrong
// passwords fail identically and cost one key derivation each.
func (s *AuthService) Login(ctx context.Context, cmd validation.Login) (*models.User, *session.Session, error) {
	span, ctx := observability.StartSpan(ctx, "AuthService", "Login")
	user, sess, err := s.login(ctx, cmd)
	span.Finish(err)
	return user, sess, err
}

func (s *AuthService) login(ctx context.Context, cmd validation.Login) (*models.User, *session.Session, error) {
	user, err := s.users.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if !models.IsNotFound(err) {
			return nil, nil, err
		}
		auth.BurnPasswordCheck(cmd.Password)
		return nil, nil, s.loginFailed(ctx, "unknown_user", cmd.Username)
	}
	if !auth.VerifyPassword(cmd.Password, user.Password) {
		return nil, nil, s.loginFailed(ctx, "bad_password", cmd.Username)
	}

	sess, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, nil, models.NewInternalError(err)
	}
	observability.SessionsIssuedTotal.WithLabelValues("login").Inc()
	return user, sess, nil
}

func (s *AuthService) loginFailed(ctx context.Context, reason, username string) error {
	observability.LoginFailuresTotal.WithLabelValues(reason).Inc()
	middleware.Logger.DebugContext(ctx, "login rejected", "reason", reason, "username", username)
	return models.NewUnauthorizedError(msgAuthFailed)
}

// Logout revokes the session. Unknown ids are ignored.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// CurrentUser loads the user behind sessionID fresh from the store. It
// returns nil without error when there is no live session or the user is gone.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	sess, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
