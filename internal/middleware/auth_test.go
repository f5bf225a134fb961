package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverStub map[string]uint

func (r resolverStub) ResolveUserID(_ context.Context, sid string) (uint, bool) {
	id, ok := r[sid]
	return id, ok
}

func TestSessionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(LoadSession("pixelgram.sid", resolverStub{"good": 7}))
	app.Get("/public", func(c *fiber.Ctx) error {
		id, _ := UserID(c)
		return c.JSON(fiber.Map{"userId": id})
	})
	app.Get("/private", SessionRequired(func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	}), func(c *fiber.Ctx) error {
		sid, _ := SessionID(c)
		return c.SendString(sid)
	})

	tests := []struct {
		name           string
		path           string
		cookie         string
		expectedStatus int
	}{
		{"public without cookie", "/public", "", fiber.StatusOK},
		{"private without cookie", "/private", "", fiber.StatusUnauthorized},
		{"private with unknown session", "/private", "bad", fiber.StatusUnauthorized},
		{"private with valid session", "/private", "good", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.cookie != "" {
				req.Header.Set("Cookie", "pixelgram.sid="+tt.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
