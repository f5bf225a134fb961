package database

import (
	"testing"

	"pixelgram/internal/config"
	"pixelgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_MigratesEveryModel(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	for _, model := range PersistentModels() {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Like{}, "idx_likes_user_post"))
	assert.True(t, db.Migrator().HasIndex(&models.Follow{}, "idx_follows_pair"))
}

func TestOpenSQLite_StoresUTC(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	user := models.User{Username: "utc_user", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	assert.Equal(t, "UTC", user.CreatedAt.Location().String())
}

func TestConfigurePool(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	cfg := &config.Config{DBDriver: config.DriverSQLite, DBConnMaxLifetimeMinutes: 15}
	require.NoError(t, configurePool(db, cfg))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		env      string
		wantSQL  bool
		wantAuto bool
	}{
		{"postgres development", config.DriverPostgres, "development", true, true},
		{"postgres production", config.DriverPostgres, "production", true, false},
		{"sqlite development", config.DriverSQLite, "development", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runSQL, runAuto := schemaPolicy(&config.Config{DBDriver: tt.driver, Env: tt.env})
			assert.Equal(t, tt.wantSQL, runSQL)
			assert.Equal(t, tt.wantAuto, runAuto)
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	all := GetMigrations()
	require.NotEmpty(t, all)
	assert.Equal(t, 1, all[0].Version)
	assert.Equal(t, "000001_init_schema", all[0].String())
	assert.Contains(t, all[0].UpScript, "idx_users_username")
	assert.NotNil(t, GetMigrationByVersion(1))
	assert.Nil(t, GetMigrationByVersion(999))
}

func TestValidateAppliedVersions(t *testing.T) {
	registered := []Migration{{Version: 1}, {Version: 2}}
	assert.NoError(t, validateAppliedVersions([]int{1, 2}, registered))
	assert.Error(t, validateAppliedVersions([]int{1, 7}, registered))
}
