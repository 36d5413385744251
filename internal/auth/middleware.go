package auth

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "github.com/Modular-CV/backend/internal/errors"
)

const (
	// AccessTokenCookie names the cookie carrying the access token.
	AccessTokenCookie = "accessToken"
	// RefreshTokenCookie names the cookie carrying the refresh token.
	RefreshTokenCookie = "refreshToken"

	sessionContextKey = "session"
)

// Session is the verified, read-only view of an access token. It is produced
// once by the middleware and handed to handlers by value.
type Session struct {
	Account Identity `json:"account"`
	Iat     int64    `json:"iat"`
	Exp     int64    `json:"exp"`
}

func sessionFromClaims(c *Claims) Session {
	s := Session{Account: c.Account}
	if c.IssuedAt != nil {
		s.Iat = c.IssuedAt.Unix()
	}
	if c.ExpiresAt != nil {
		s.Exp = c.ExpiresAt.Unix()
	}
	return s
}

// RequireAccessToken verifies the access token from the accessToken cookie
// or the Authorization bearer header. A missing token is AUTH-001, an expired
// one AUTH-005 and anything else AUTH-002.
func RequireAccessToken(tokens *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  sessionContextKey,
		TokenLookup: "cookie:" + AccessTokenCookie + ",header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := tokens.ValidateAccessToken(token)
			if err != nil {
				return nil, err
			}
			return sessionFromClaims(claims), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, ErrTokenExpired):
				return apperrors.ErrAccessTokenExpired
			case errors.Is(err, ErrTokenInvalid):
				return apperrors.ErrAccessTokenInvalid
			}
			return apperrors.ErrAccessTokenMissing
		},
	})
}

// SessionFrom returns the session stored by RequireAccessToken.
func SessionFrom(c echo.Context) (Session, bool) {
	s, ok := c.Get(sessionContextKey).(Session)
	return s, ok
}
