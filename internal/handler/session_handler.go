package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Modular-CV/backend/internal/auth"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/service"
)

// RefreshPath is the only path the refresh cookie is sent to.
const RefreshPath = "/sessions/my/refresh"

// SessionHandler handles session endpoints.
type SessionHandler struct {
	sessionService service.SessionService
	accessTTL      time.Duration
	refreshTTL     time.Duration
	cookies        CookieOptions
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessionService service.SessionService, tokens *auth.JWTService, cookies CookieOptions) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		accessTTL:      tokens.AccessTTL(),
		refreshTTL:     tokens.RefreshTTL(),
		cookies:        cookies,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary Create a session
// @Description Returns an access and refresh token in the body and as httpOnly cookies.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.sessionService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setTokenCookies(c, result.Tokens)
	return success(c, http.StatusOK, echo.Map{
		"account": result.Account,
		"tokens":  result.Tokens,
	})
}

// GetMySession godoc
// @Summary Get the decoded access token
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /sessions/my [get]
func (h *SessionHandler) GetMySession(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}
	return success(c, http.StatusOK, echo.Map{"jwtPayload": session})
}

// Refresh godoc
// @Summary Rotate the session tokens
// @Description Reads the refresh token from its cookie, falling back to the Authorization bearer header.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /sessions/my/refresh [post]
func (h *SessionHandler) Refresh(c echo.Context) error {
	pair, err := h.sessionService.Refresh(c.Request().Context(), refreshTokenFrom(c))
	if err != nil {
		return err
	}

	h.setTokenCookies(c, *pair)
	return success(c, http.StatusOK, echo.Map{"tokens": pair})
}

// Logout godoc
// @Summary Delete the session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /sessions/my [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	if err := h.sessionService.Logout(c.Request().Context(), session.Account.ID); err != nil {
		return err
	}

	c.SetCookie(h.cookie(auth.AccessTokenCookie, "", "/", -1))
	c.SetCookie(h.cookie(auth.RefreshTokenCookie, "", RefreshPath, -1))
	return successMessage(c, http.StatusOK, "The session has been deleted")
}

func (h *SessionHandler) setTokenCookies(c echo.Context, pair service.TokenPair) {
	c.SetCookie(h.cookie(auth.AccessTokenCookie, pair.AccessToken, "/", int(h.accessTTL.Seconds())))
	c.SetCookie(h.cookie(auth.RefreshTokenCookie, pair.RefreshToken, RefreshPath, int(h.refreshTTL.Seconds())))
}

func (h *SessionHandler) cookie(name, value, path string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
	}
}

func refreshTokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(auth.RefreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
