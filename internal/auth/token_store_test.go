package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
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

func createAccount(t *testing.T, gormDB *gorm.DB) *model.Account {
	t.Helper()
	account := &model.Account{Email: uuid.NewString() + "@test.com", Password: "x"}
	require.NoError(t, gormDB.Create(account).Error)
	return account
}

func TestTokenStore_UpsertKeepsOneRowPerAccount(t *testing.T) {
	gormDB := newTestDB(t)
	store := NewTokenStore(gormDB)
	ctx := context.Background()
	account := createAccount(t, gormDB)

	first := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, store.StoreRefreshToken(ctx, account.ID, "hash-1", first))

	second := first.Add(time.Hour)
	require.NoError(t, store.StoreRefreshToken(ctx, account.ID, "hash-2", second))

	var count int64
	require.NoError(t, gormDB.Model(&model.RefreshToken{}).Where("account_id = ?", account.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	row, err := store.GetRefreshToken(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash-2", row.TokenHash)
	assert.True(t, row.ExpiresAt.Equal(second.UTC()))
}

func TestTokenStore_GetAndDelete(t *testing.T) {
	gormDB := newTestDB(t)
	store := NewTokenStore(gormDB)
	ctx := context.Background()
	account := createAccount(t, gormDB)

	_, err := store.GetRefreshToken(ctx, account.ID)
	assert.ErrorIs(t, err, ErrNoRefreshToken)

	require.NoError(t, store.StoreRefreshToken(ctx, account.ID, "hash", time.Now().Add(time.Hour)))
	require.NoError(t, store.DeleteRefreshToken(ctx, account.ID))

	_, err = store.GetRefreshToken(ctx, account.ID)
	assert.ErrorIs(t, err, ErrNoRefreshToken)

	assert.NoError(t, store.DeleteRefreshToken(ctx, account.ID))
}
