package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/validation"
)

const statusSuccess = "SUCCESS"

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Status  string      `json:"status" example:"SUCCESS"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func success(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, SuccessResponse{Status: statusSuccess, Data: data})
}

func successMessage(c echo.Context, code int, msg string) error {
	return c.JSON(code, SuccessResponse{Status: statusSuccess, Message: msg})
}

// bindAndValidate decodes the request body into req and validates it. Both
// decoding and validation failures come back as a ValidationError.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Internal != nil {
			err = he.Internal
		}
		return apperrors.NewValidationError(validation.Issues(err))
	}
	return c.Validate(req)
}

// pathID parses a uuid path parameter. A malformed id can never name an
// existing resource, so it is reported as not found.
func pathID(c echo.Context, name, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.NewNotFound(resource)
	}
	return id, nil
}

// CookieOptions controls the attributes of the session cookies.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
}
