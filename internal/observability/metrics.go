package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixelgram_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pixelgram_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// WebSocketConnectionsTotal is the gauge of total WebSocket connections.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pixelgram_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// WebSocketEventsTotal counts WebSocket events by type.
	WebSocketEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixelgram_websocket_events_total",
		Help: "Total WebSocket events by type",
	}, []string{"event_type"})

	// WebSocketBackpressureDrops counts messages dropped due to backpressure by reason.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixelgram_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"reason"})

	// SearchQueriesTotal counts realtime user searches by outcome.
	SearchQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixelgram_search_queries_total",
		Help: "Realtime user search queries by outcome",
	}, []string{"outcome"})

	// ToggleOperationsTotal counts follow and like toggles by edge kind and resulting state.
	ToggleOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixelgram_toggle_operations_total",
		Help: "Follow and like toggles by edge kind and resulting state",
	}, []string{"kind", "state"})

	// SessionsIssuedTotal counts sessions created by login or registration.
	SessionsIssuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixelgram_sessions_issued_total",
		Help: "Sessions issued by origin",
	}, []string{"origin"})

	// LoginFailuresTotal counts rejected logins. The reason label never reaches clients.
	LoginFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixelgram_login_failures_total",
		Help: "Rejected login attempts by reason",
	}, []string{"reason"})

	// MediaUploadsTotal counts stored uploads by media kind.
	MediaUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixelgram_media_uploads_total",
		Help: "Stored media uploads by kind",
	}, []string{"kind"})

	// MediaUploadBytes records stored upload sizes.
	MediaUploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pixelgram_media_upload_bytes",
		Help:    "Size of stored media uploads in bytes",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
	})
)

// ToggleState labels the state a toggle ended in.
func ToggleState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

const queryStartKey = "pixelgram:query_start"

// RegisterDatabaseMetrics installs gorm callbacks that record query latency
// into DatabaseQueryLatency.
func RegisterDatabaseMetrics(db *gorm.DB) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(queryStartKey, time.Now())
	}
	after := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			v, ok := tx.InstanceGet(queryStartKey)
			if !ok {
				return
			}
			start, ok := v.(time.Time)
			if !ok {
				return
			}
			table := tx.Statement.Table
			if table == "" {
				table = "unknown"
			}
			DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
		}
	}

	cb := db.Callback()
	steps := []struct {
		op       string
		register func() error
	}{
		{"create", func() error {
			if err := cb.Create().Before("gorm:create").Register("metrics:before_create", before); err != nil {
				return err
			}
			return cb.Create().After("gorm:create").Register("metrics:after_create", after("create"))
		}},
		{"query", func() error {
			if err := cb.Query().Before("gorm:query").Register("metrics:before_query", before); err != nil {
				return err
			}
			return cb.Query().After("gorm:query").Register("metrics:after_query", after("query"))
		}},
		{"update", func() error {
			if err := cb.Update().Before("gorm:update").Register("metrics:before_update", before); err != nil {
				return err
			}
			return cb.Update().After("gorm:update").Register("metrics:after_update", after("update"))
		}},
		{"delete", func() error {
			if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", before); err != nil {
				return err
			}
			return cb.Delete().After("gorm:delete").Register("metrics:after_delete", after("delete"))
		}},
	}
	for _, s := range steps {
		if err := s.register(); err != nil {
			return err
		}
	}
	return nil
}
