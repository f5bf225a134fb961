package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint
	Name string
}

func TestRegisterDatabaseMetrics(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	require.NoError(t, RegisterDatabaseMetrics(db))

	require.NoError(t, db.Create(&widget{Name: "a"}).Error)
	var got widget
	require.NoError(t, db.First(&got).Error)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(DatabaseQueryLatency), 2)
}

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "pixelgram-test", Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	span, ctx := StartSpan(context.Background(), "test", "op")
	assert.NotNil(t, ctx)
	span.Finish(errors.New("boom"))
}

func TestToggleState(t *testing.T) {
	assert.Equal(t, "on", ToggleState(true))
	assert.Equal(t, "off", ToggleState(false))
}
