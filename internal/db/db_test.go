package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modular-CV/backend/internal/logging"
	"github.com/Modular-CV/backend/internal/model"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "", false, logging.Discard())
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestMigrateAndReset_SQLite(t *testing.T) {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gormDB, err := Open("sqlite", dsn, false, logging.Discard())
	require.NoError(t, err)

	require.NoError(t, Migrate(gormDB))
	for _, m := range model.All() {
		assert.True(t, gormDB.Migrator().HasTable(m))
	}

	require.NoError(t, Reset(gormDB))
	for _, m := range model.All() {
		assert.False(t, gormDB.Migrator().HasTable(m))
	}
}
