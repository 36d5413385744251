package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/db"
	"github.com/Modular-CV/backend/internal/logging"
	"github.com/Modular-CV/backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared", false, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func seedAccount(t *testing.T, gormDB *gorm.DB, email string) *model.Account {
	t.Helper()
	account := &model.Account{Email: email, Password: "digest"}
	require.NoError(t, gormDB.Create(account).Error)
	return account
}

func countRows(t *testing.T, gormDB *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gormDB.Model(m).Count(&n).Error)
	return n
}
