// Package notifications runs the realtime websocket channel: user search
// queries and pushed direct messages.
package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"pixelgram/internal/featureflags"
	"pixelgram/internal/middleware"
	"pixelgram/internal/models"
	"pixelgram/internal/observability"
	"pixelgram/internal/validation"

	"github.com/gofiber/websocket/v2"
)

const (
	// Max connections per user
	maxConnsPerUser = 12
	// Max anonymous connections
	maxAnonymousConns = 2000
	// Max total connections
	maxTotalConns = 10000

	searchTimeout = 5 * time.Second
)

// Message types on the realtime channel.
const (
	TypeSearch        = "search"
	TypeSearchUsers   = "search_users"
	TypeSearchResults = "search_results"
	TypePing          = "ping"
	TypePong          = "pong"
	TypeNewMessage    = "new_message"
	TypeError         = "error"
)

// Errors returned by Register.
var (
	ErrServerFull = errors.New("server connection limit reached")
	ErrUserFull   = errors.New("user connection limit reached")
	ErrShutdown   = errors.New("hub is shutting down")
)

// Searcher answers directory queries.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.User, error)
}

// Inbound is a client request.
type Inbound struct {
	Type  string `json:"type"`
	Query string `json:"query"`
}

// SearchResults answers a search request. Users never carry password hashes.
type SearchResults struct {
	Type  string        `json:"type"`
	Query string        `json:"query"`
	Users []models.User `json:"users"`
}

// ErrorReply reports a request the hub could not answer.
type ErrorReply struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewMessageEvent pushes a stored direct message to its participants.
type NewMessageEvent struct {
	Type    string          `json:"type"`
	Message *models.Message `json:"message"`
}

// Hub tracks live connections by user id; anonymous connections share id 0.
type Hub struct {
	mu         sync.RWMutex
	conns      map[uint]map[*Client]struct{}
	totalConns int
	closed     bool

	searcher Searcher
	flags    *featureflags.Manager
	notifier *Notifier

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub creates a Hub answering searches with searcher.
func NewHub(searcher Searcher, flags *featureflags.Manager) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		conns:    make(map[uint]map[*Client]struct{}),
		searcher: searcher,
		flags:    flags,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Name returns a human-readable identifier for this hub.
func (h *Hub) Name() string { return "realtime hub" }

// Register adds a connection for userID (0 when anonymous).
func (h *Hub) Register(userID uint, conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrShutdown
	}
	if h.totalConns >= maxTotalConns {
		return nil, ErrServerFull
	}

	m, ok := h.conns[userID]
	if !ok {
		m = make(map[*Client]struct{})
		h.conns[userID] = m
	}
	limit := maxConnsPerUser
	if userID == 0 {
		limit = maxAnonymousConns
	}
	if len(m) >= limit {
		return nil, ErrUserFull
	}

	client := NewClient(h, conn, userID)
	client.IncomingHandler = h.handleIncoming
	m[client] = struct{}{}
	h.totalConns++
	observability.WebSocketConnectionsTotal.Inc()
	return client, nil
}

// UnregisterClient removes client and closes its outbound queue.
func (h *Hub) UnregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	m, ok := h.conns[client.UserID]
	if !ok {
		return
	}
	if _, exists := m[client]; !exists {
		return
	}
	delete(m, client)
	if len(m) == 0 {
		delete(h.conns, client.UserID)
	}
	h.totalConns--
	close(client.Send)
	observability.WebSocketConnectionsTotal.Dec()
}

// Count returns the number of live connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.totalConns
}

// Broadcast sends payload to every connection of userID in this process.
func (h *Hub) Broadcast(userID uint, payload []byte) {
	if userID == 0 {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns[userID] {
		c.TrySend(payload)
	}
}

// PublishMessage delivers a new_message event to the sender and receiver.
// With Redis configured delivery goes through pub/sub so other processes see
// it too; otherwise only local sockets are reached.
func (h *Hub) PublishMessage(ctx context.Context, msg *models.Message) {
	payload, err := json.Marshal(NewMessageEvent{Type: TypeNewMessage, Message: msg})
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to encode message event", "error", err)
		return
	}
	recipients := []uint{msg.ReceiverID}
	if msg.SenderID != msg.ReceiverID {
		recipients = append(recipients, msg.SenderID)
	}

	h.mu.RLock()
	notifier := h.notifier
	h.mu.RUnlock()

	for _, uid := range recipients {
		if notifier.Enabled() {
			err := notifier.PublishUser(ctx, uid, string(payload))
			if err == nil {
				continue
			}
			middleware.Logger.WarnContext(ctx, "redis publish failed, delivering locally", "user_id", uid, "error", err)
		}
		h.Broadcast(uid, payload)
	}
	observability.WebSocketEventsTotal.WithLabelValues(TypeNewMessage).Inc()
}

// StartWiring subscribes to the per-user Redis channels and forwards every
// payload to the matching local connections.
func (h *Hub) StartWiring(ctx context.Context, n *Notifier) error {
	if !n.Enabled() {
		return nil
	}
	if err := n.StartPatternSubscriber(ctx, func(userID uint, payload string) {
		h.Broadcast(userID, []byte(payload))
	}); err != nil {
		return err
	}
	h.mu.Lock()
	h.notifier = n
	h.mu.Unlock()
	return nil
}

func (h *Hub) handleIncoming(c *Client, raw []byte) {
	var in Inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		observability.WebSocketEventsTotal.WithLabelValues("malformed").Inc()
		h.reply(c, ErrorReply{Type: TypeError, Message: "Invalid message format"})
		return
	}
	observability.WebSocketEventsTotal.WithLabelValues(in.Type).Inc()

	switch in.Type {
	case TypeSearch, TypeSearchUsers:
		h.handleSearch(c, in.Query)
	case TypePing:
		h.reply(c, map[string]string{"type": TypePong})
	default:
		h.reply(c, ErrorReply{Type: TypeError, Message: "Unknown message type"})
	}
}

func (h *Hub) handleSearch(c *Client, query string) {
	if !h.flags.Enabled(featureflags.RealtimeSearch, c.UserID) {
		observability.SearchQueriesTotal.WithLabelValues("disabled").Inc()
		h.reply(c, ErrorReply{Type: TypeError, Message: "Search is disabled"})
		return
	}
	if !c.Allow() {
		observability.SearchQueriesTotal.WithLabelValues("limited").Inc()
		h.reply(c, ErrorReply{Type: TypeError, Message: "Too many search requests"})
		return
	}

	cmd := validation.Search{Query: query}
	if err := validation.Check(&cmd); err != nil {
		observability.SearchQueriesTotal.WithLabelValues("invalid").Inc()
		h.reply(c, ErrorReply{Type: TypeError, Message: "Invalid search query"})
		return
	}
	if cmd.Query == "" {
		observability.SearchQueriesTotal.WithLabelValues("empty").Inc()
		h.reply(c, SearchResults{Type: TypeSearchResults, Users: []models.User{}})
		return
	}

	ctx, cancel := context.WithTimeout(h.ctx, searchTimeout)
	defer cancel()
	users, err := h.searcher.Search(ctx, cmd.Query)
	if err != nil {
		observability.SearchQueriesTotal.WithLabelValues("error").Inc()
		middleware.Logger.ErrorContext(ctx, "realtime search failed", "error", err)
		h.reply(c, ErrorReply{Type: TypeError, Message: "Search failed"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	observability.SearchQueriesTotal.WithLabelValues("ok").Inc()
	h.reply(c, SearchResults{Type: TypeSearchResults, Query: cmd.Query, Users: users})
}

func (h *Hub) reply(c *Client, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		middleware.Logger.Error("failed to encode websocket reply", "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, live := h.conns[c.UserID][c]; live {
		c.TrySend(payload)
	}
}

// Shutdown refuses new connections and closes every outbound queue. Each
// client's write pump then sends a close frame and drops the socket.
func (h *Hub) Shutdown(_ context.Context) error {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true

	for _, userConns := range h.conns {
		for client := range userConns {
			close(client.Send)
			observability.WebSocketConnectionsTotal.Dec()
		}
	}
	h.conns = make(map[uint]map[*Client]struct{})
	h.totalConns = 0
	return nil
}
