package http

import (
	"llm-personal-assistant/internal/task"
	pkgErrors "llm-personal-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "task title must not be empty")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
