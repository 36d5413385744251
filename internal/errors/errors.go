package errors

import (
	"errors"
	"net/http"

	"github.com/Modular-CV/backend/internal/validation"
)

var (
	// ErrAccessTokenMissing is returned when a protected route receives no access token.
	ErrAccessTokenMissing = errors.New("access token is missing")
	// ErrAccessTokenInvalid is returned when the access token signature or shape is wrong.
	ErrAccessTokenInvalid = errors.New("access token is invalid")
	// ErrAccessTokenExpired is returned when the access token is past its expiry.
	ErrAccessTokenExpired = errors.New("access token expired")
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionAccountInvalid is returned when a token names an account that no longer exists.
	ErrSessionAccountInvalid = errors.New("session account is invalid")
	// ErrRefreshTokenMissing is returned when no refresh token was presented.
	ErrRefreshTokenMissing = errors.New("refresh token is missing")
	// ErrRefreshTokenInvalid is returned for forged, revoked and replayed refresh tokens alike.
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid")
	// ErrRefreshTokenExpired is returned when the refresh token or its stored row expired.
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrMailNotSent is returned when the verification mail could not be delivered.
	ErrMailNotSent = errors.New("email could not be sent")
	// ErrVerificationTokenInvalid is returned for unknown, expired and used verification tokens.
	ErrVerificationTokenInvalid = errors.New("verification token is invalid, expired or used")
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("resource not found")
)

// API error codes.
const (
	CodeAccessTokenMissing       = "AUTH-001"
	CodeAccessTokenInvalid       = "AUTH-002"
	CodeInvalidCredentials       = "AUTH-003"
	CodeSessionAccountInvalid    = "AUTH-004"
	CodeAccessTokenExpired       = "AUTH-005"
	CodeRefreshTokenMissing      = "AUTH-006"
	CodeRefreshTokenInvalid      = "AUTH-007"
	CodeRefreshTokenExpired      = "AUTH-008"
	CodeValidation               = "VAL-001"
	CodeNotFound                 = "VAL-002"
	CodeEmailTaken               = "ACC-001"
	CodeMailNotSent              = "ACC-002"
	CodeVerificationTokenInvalid = "VER-001"
	CodeInternal                 = "INTERNAL_ERROR"
)

// ValidationError carries every field-level issue found in a request.
type ValidationError struct {
	Issues []validation.Issue
}

func (e *ValidationError) Error() string {
	return "request body is missing required fields or is invalid"
}

// NewValidationError wraps issues into a ValidationError.
func NewValidationError(issues []validation.Issue) *ValidationError {
	return &ValidationError{Issues: issues}
}

// NotFoundError names the resource that could not be resolved.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Is makes errors.Is(err, ErrNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFound returns a NotFoundError for resource.
func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Status  string      `json:"status"`
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// APIError represents an HTTP error with status code.
type APIError struct {
	Status  int
	Code    string
	Message string
	Data    interface{}
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new API error.
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// WithData returns a copy of e carrying data.
func (e *APIError) WithData(data interface{}) *APIError {
	cp := *e
	cp.Data = data
	return &cp
}

// ToErrorResponse converts an APIError to ErrorResponse.
func (e *APIError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Status:  "ERROR",
		Error:   e.Code,
		Message: e.Message,
		Data:    e.Data,
	}
}

var sentinels = []struct {
	err    error
	status int
	code   string
	msg    string
}{
	{ErrAccessTokenMissing, http.StatusBadRequest, CodeAccessTokenMissing, "Access token is missing"},
	{ErrAccessTokenInvalid, http.StatusUnauthorized, CodeAccessTokenInvalid, "Access token is invalid"},
	{ErrAccessTokenExpired, http.StatusUnauthorized, CodeAccessTokenExpired, "Access Token expired"},
	{ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid email or password"},
	{ErrSessionAccountInvalid, http.StatusUnauthorized, CodeSessionAccountInvalid, "Session account is invalid"},
	{ErrRefreshTokenMissing, http.StatusBadRequest, CodeRefreshTokenMissing, "Refresh token is missing"},
	{ErrRefreshTokenInvalid, http.StatusUnauthorized, CodeRefreshTokenInvalid, "Refresh token is invalid"},
	{ErrRefreshTokenExpired, http.StatusUnauthorized, CodeRefreshTokenExpired, "Refresh token expired"},
	{ErrEmailTaken, http.StatusConflict, CodeEmailTaken, "Email is already registered"},
	{ErrMailNotSent, http.StatusInternalServerError, CodeMailNotSent, "Email could not be sent"},
	{ErrVerificationTokenInvalid, http.StatusBadRequest, CodeVerificationTokenInvalid, "Verification token is invalid, expired or used"},
}

// MapErrorToHTTP maps domain errors to API errors.
func MapErrorToHTTP(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return NewAPIError(http.StatusBadRequest, CodeValidation, "Request body is missing required fields or is invalid").
			WithData(map[string]interface{}{"issues": verr.Issues})
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return NewAPIError(http.StatusNotFound, CodeNotFound, "The requested resource does not exist").
			WithData(map[string]interface{}{"details": nf.Error()})
	}

	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return NewAPIError(s.status, s.code, s.msg)
		}
	}

	if errors.Is(err, ErrNotFound) {
		return NewAPIError(http.StatusNotFound, CodeNotFound, "The requested resource does not exist")
	}

	return NewAPIError(http.StatusInternalServerError, CodeInternal, "internal server error")
}
