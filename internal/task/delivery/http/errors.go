package http

import (
	"errors"
	"net/http"

	"voice-task-assistant/internal/task"
	pkgErrors "voice-task-assistant/pkg/errors"
)

var errTaskNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrStorage):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "task storage unavailable")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
