package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by LoadSession.
const (
	LocalUserID    = "userID"
	LocalSessionID = "sessionID"
)

// SessionResolver maps a session id to the user it was issued for.
type SessionResolver interface {
	ResolveUserID(ctx context.Context, sessionID string) (uint, bool)
}

// LoadSession attaches the caller's identity when the request carries a valid
// session cookie. It never rejects a request; use SessionRequired for that.
func LoadSession(cookieName string, resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		if sid == "" {
			return c.Next()
		}

		userID, ok := resolver.ResolveUserID(c.UserContext(), sid)
		if !ok {
			return c.Next()
		}

		c.Locals(LocalSessionID, sid)
		c.Locals(LocalUserID, userID)
		// Sync to UserContext for logging and downstream services
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
		return c.Next()
	}
}

// SessionRequired rejects requests that LoadSession did not authenticate.
func SessionRequired(unauthorized func(c *fiber.Ctx) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserID(c); !ok {
			return unauthorized(c)
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id, if any.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalUserID).(uint)
	return id, ok && id != 0
}

// SessionID returns the resolved session id, if any.
func SessionID(c *fiber.Ctx) (string, bool) {
	sid, ok := c.Locals(LocalSessionID).(string)
	return sid, ok && sid != ""
}
