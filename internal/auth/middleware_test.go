package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/logging"
)

func newProtectedEcho(s *JWTService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logging.Discard())
	e.GET("/protected", func(c echo.Context) error {
		session, ok := SessionFrom(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, session)
	}, RequireAccessToken(s))
	return e
}

func TestRequireAccessToken(t *testing.T) {
	s := newTestJWTService(t)
	id := Identity{ID: uuid.New(), Email: "alice@test.com"}

	valid, err := s.GenerateAccessToken(id)
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := s.GenerateAccessToken(id)
	require.NoError(t, err)
	s.now = time.Now

	refresh, _, err := s.GenerateRefreshToken(id)
	require.NoError(t, err)

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "bearer header",
			setup:      func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+valid) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "cookie",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: valid}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing",
			setup:      func(r *http.Request) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeAccessTokenMissing,
		},
		{
			name:       "expired",
			setup:      func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+expired) },
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.CodeAccessTokenExpired,
		},
		{
			name:       "refresh token used as access token",
			setup:      func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+refresh) },
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.CodeAccessTokenInvalid,
		},
		{
			name:       "garbage",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "garbage"}) },
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.CodeAccessTokenInvalid,
		},
	}

	e := newProtectedEcho(s)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantCode != "" {
				assert.Equal(t, "ERROR", body["status"])
				assert.Equal(t, tt.wantCode, body["error"])
				return
			}
			account := body["account"].(map[string]interface{})
			assert.Equal(t, id.ID.String(), account["id"])
			assert.Equal(t, id.Email, account["email"])
			assert.NotZero(t, body["exp"])
		})
	}
}
