// Package session issues and resolves opaque server-side login sessions.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTTL is the lifetime of a session. Sessions are not renewed on use.
const DefaultTTL = 30 * 24 * time.Hour

// ErrNotFound is returned for unknown, revoked and expired sessions.
var ErrNotFound = errors.New("session not found")

// Session binds an opaque id to a user until ExpiresAt.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at t.
func (s *Session) Expired(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}

// Store persists sessions. Get must not block concurrent readers.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// Manager issues, resolves and revokes sessions.
type Manager struct {
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewManager returns a Manager over store. A non-positive ttl uses DefaultTTL
// and a nil logger uses slog.Default.
func NewManager(store Store, ttl time.Duration, logger *slog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:  store,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// TTL returns the lifetime given to new sessions.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for userID.
func (m *Manager) Issue(ctx context.Context, userID uint) (*Session, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	now := m.now()
	s := &Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// Resolve returns the live session for id or ErrNotFound.
func (m *Manager) Resolve(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Expired(m.now()) {
		return nil, ErrNotFound
	}
	return s, nil
}

// Revoke deletes the session. Unknown ids are not an error.
func (m *Manager) Revoke(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// ResolveUserID adapts the Manager to middleware.SessionResolver. Store
// failures are logged and treated as an absent session.
func (m *Manager) ResolveUserID(ctx context.Context, id string) (uint, bool) {
	s, err := m.Resolve(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.WarnContext(ctx, "session lookup failed", "error", err)
		}
		return 0, false
	}
	return s.UserID, true
}

// newID returns 256 random bits, base64url encoded.
func newID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
