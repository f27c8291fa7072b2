package http

import (
	"errors"
	"log/slog"
	"net/http"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/order"
	"workify/internal/core/domain/model/review"
	"workify/internal/generated/servers"
	"workify/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	CodeBadRequest       = "bad_request"
	CodeUnauthorized     = "unauthorized"
	CodePermissionDenied = "permission_denied"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeInvalidValue     = "invalid_value"
	CodeInternal         = "internal_error"
)

var conflicts = []error{
	application.ErrDuplicateApplication,
	application.ErrNotPending,
	review.ErrDuplicateReview,
	review.ErrNoAcceptedWorker,
	review.ErrOrderNotCompleted,
	order.ErrIllegalTransition,
	order.ErrOrderNotOpen,
	errs.ErrObjectAlreadyExists,
}

// statusOf maps a use case error to its HTTP status and error code.
func statusOf(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden, CodePermissionDenied
	case isConflict(err):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, CodeInvalidValue
	case errors.As(err, &httpErr):
		return httpErr.Code, codeForStatus(httpErr.Code)
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func isConflict(err error) bool {
	for _, target := range conflicts {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodePermissionDenied
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	}
	if status >= http.StatusInternalServerError {
		return CodeInternal
	}
	return CodeBadRequest
}

// NewErrorHandler renders every error returned by a handler or middleware as
// a servers.Error body. Internal errors are logged and their text is hidden.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code := statusOf(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && status == httpErr.Code {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
			message = http.StatusText(status)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
