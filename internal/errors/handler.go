package errors

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every error returned from a handler or middleware
// in the ERROR envelope. Unknown errors are logged and hidden behind INTERNAL_ERROR.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apiErr *APIError
		if he, ok := err.(*echo.HTTPError); ok {
			apiErr = fromEchoError(he)
		} else {
			apiErr = MapErrorToHTTP(err)
		}

		if apiErr.Status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(apiErr.Status)
		} else {
			writeErr = c.JSON(apiErr.Status, apiErr.ToErrorResponse())
		}
		if writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}

func fromEchoError(he *echo.HTTPError) *APIError {
	if he.Internal != nil {
		if inner, ok := he.Internal.(*APIError); ok {
			return inner
		}
	}

	msg := http.StatusText(he.Code)
	if s, ok := he.Message.(string); ok && s != "" {
		msg = s
	}

	switch he.Code {
	case http.StatusBadRequest:
		return NewAPIError(he.Code, CodeValidation, msg)
	case http.StatusNotFound:
		return NewAPIError(he.Code, CodeNotFound, "The requested resource does not exist")
	case http.StatusMethodNotAllowed:
		return NewAPIError(he.Code, "METHOD_NOT_ALLOWED", msg)
	case http.StatusRequestEntityTooLarge:
		return NewAPIError(he.Code, "PAYLOAD_TOO_LARGE", msg)
	case http.StatusTooManyRequests:
		return NewAPIError(he.Code, "TOO_MANY_REQUESTS", msg)
	}
	if he.Code >= http.StatusInternalServerError {
		return NewAPIError(he.Code, CodeInternal, "internal server error")
	}
	return NewAPIError(he.Code, "REQUEST_ERROR", msg)
}
