package server

import (
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"pixelgram/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listen serves app on a random local port until the test ends.
func listen(t *testing.T, srv *Server, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() {
		_ = srv.hub.Shutdown(t.Context())
		_ = app.Shutdown()
	})
	return ln.Addr().String()
}

func dial(t *testing.T, addr, path string, cookie *http.Cookie) *websocket.Conn {
	t.Helper()
	header := http.Header{}
	if cookie != nil {
		header.Set("Cookie", cookie.Name+"="+cookie.Value)
	}
	conn, resp, err := websocket.DefaultDialer.Dial("ws://"+addr+path, header)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	return raw
}

func TestWebsocket_RealtimeSearch(t *testing.T) {
	srv, app := newTestServer(t, nil)
	register(t, app, "alice")
	register(t, app, "bob_b")
	addr := listen(t, srv, app)

	for _, path := range []string{"/ws", "/api/ws"} {
		t.Run(path, func(t *testing.T) {
			conn := dial(t, addr, path, nil)

			require.NoError(t, conn.WriteJSON(map[string]string{"type": "search", "query": "ali"}))
			raw := readFrame(t, conn)
			assert.NotContains(t, string(raw), "password")

			var results struct {
				Type  string        `json:"type"`
				Users []models.User `json:"users"`
			}
			require.NoError(t, json.Unmarshal(raw, &results))
			assert.Equal(t, "search_results", results.Type)
			require.Len(t, results.Users, 1)
			assert.Equal(t, "alice", results.Users[0].Username)

			require.NoError(t, conn.WriteJSON(map[string]string{"type": "search_users", "query": ""}))
			require.NoError(t, json.Unmarshal(readFrame(t, conn), &results))
			assert.Equal(t, "search_results", results.Type)
			assert.Empty(t, results.Users)

			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
			var reply struct {
				Type    string `json:"type"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(readFrame(t, conn), &reply))
			assert.Equal(t, "error", reply.Type)
		})
	}
}

func TestWebsocket_MessagePush(t *testing.T) {
	srv, app := newTestServer(t, nil)
	_, alice := register(t, app, "alice")
	bobID, bob := register(t, app, "bob_b")
	addr := listen(t, srv, app)

	bobConn := dial(t, addr, "/ws", bob)
	require.Eventually(t, func() bool { return srv.hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	resp := doJSON(t, app, http.MethodPost, "/api/messages", map[string]any{
		"receiverId": bobID,
		"content":    "are you there?",
	}, alice)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var event struct {
		Type    string         `json:"type"`
		Message models.Message `json:"message"`
	}
	require.NoError(t, json.Unmarshal(readFrame(t, bobConn), &event))
	assert.Equal(t, "new_message", event.Type)
	assert.Equal(t, "are you there?", event.Message.Content)
	assert.Equal(t, bobID, event.Message.ReceiverID)
}

func TestWebsocket_RequiresUpgrade(t *testing.T) {
	_, app := newTestServer(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/ws", nil, nil)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
