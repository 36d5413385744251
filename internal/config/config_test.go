package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "access")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh")
	t.Setenv("PEPPER_SECRET", "pepper")
}

func TestFromEnv_Defaults(t *testing.T) {
	setSecrets(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenMaxAge)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenMaxAge)
	assert.Equal(t, 24*time.Hour, cfg.VerificationTokenMaxAge)
	assert.Equal(t, http.SameSiteStrictMode, cfg.CookieSameSite)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestFromEnv_MissingSecrets(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh")
	t.Setenv("PEPPER_SECRET", "")

	cfg, err := FromEnv()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrMissingSecret)
	assert.Contains(t, err.Error(), "ACCESS_TOKEN_SECRET, PEPPER_SECRET")
}

func TestFromEnv_Durations(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "go duration", value: "30m", want: 30 * time.Minute},
		{name: "milliseconds", value: "60000", want: time.Minute},
		{name: "garbage", value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setSecrets(t)
			t.Setenv("ACCESS_TOKEN_MAX_AGE", tt.value)

			cfg, err := FromEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.AccessTokenMaxAge)
		})
	}
}

func TestFromEnv_CookieAndOrigins(t *testing.T) {
	setSecrets(t)
	t.Setenv("COOKIE_SAMESITE", "Lax")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, http.SameSiteLaxMode, cfg.CookieSameSite)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}
