package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/auth"
	"github.com/Modular-CV/backend/internal/db"
	"github.com/Modular-CV/backend/internal/logging"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared", false, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func newTestHasher(t *testing.T) *auth.Hasher {
	t.Helper()
	cfg := auth.DefaultHasherConfig("test-pepper")
	cfg.Time = 1
	cfg.Memory = 64
	h, err := auth.NewHasher(cfg)
	require.NoError(t, err)
	return h
}

func newTestJWT(t *testing.T) *auth.JWTService {
	t.Helper()
	s, err := auth.NewJWTService(auth.TokenConfig{
		AccessSecret:  "access-secret",
		AccessTTL:     15 * time.Minute,
		RefreshSecret: "refresh-secret",
		RefreshTTL:    time.Hour,
	})
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }

func gormErrRecordNotFound() error { return gorm.ErrRecordNotFound }
