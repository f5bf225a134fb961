package server

import (
	"encoding/json"
	"log/slog"

	"pixelgram/internal/middleware"
	"pixelgram/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// websocketUpgradeRequired rejects plain HTTP requests to the realtime endpoints.
func websocketUpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WebsocketHandler serves the realtime channel. A session is optional:
// anonymous connections can search but never receive message pushes.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals(middleware.LocalUserID).(uint)

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			middleware.Logger.Warn("websocket registration rejected",
				slog.Uint64("user_id", uint64(userID)),
				slog.String("error", err.Error()),
			)
			if payload, merr := json.Marshal(notifications.ErrorReply{
				Type:    notifications.TypeError,
				Message: err.Error(),
			}); merr == nil {
				_ = conn.WriteMessage(websocket.TextMessage, payload)
			}
			_ = conn.Close()
			return
		}

		middleware.Logger.Debug("websocket connected", slog.Uint64("user_id", uint64(userID)))

		go client.WritePump()
		client.ReadPump()
	})
}
