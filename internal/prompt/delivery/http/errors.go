package http

import (
	"context"
	"errors"

	"llm-personal-assistant/internal/intent"
	"llm-personal-assistant/internal/prompt"
	pkgErrors "llm-personal-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, prompt.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "prompt not found")
	case errors.Is(err, prompt.ErrInvalidCadence):
		return pkgErrors.NewHTTPError(400, "cadence must be daily, weekly or monthly")
	case errors.Is(err, prompt.ErrEmptyResponse):
		return pkgErrors.NewHTTPError(400, "response must not be empty")
	case errors.Is(err, intent.ErrServiceUnavailable):
		return pkgErrors.NewHTTPError(502, "language model unavailable")
	case errors.Is(err, intent.ErrNoJSONFound), errors.Is(err, intent.ErrMalformedJSON):
		return pkgErrors.NewHTTPError(502, "language model returned an unusable analysis")
	case errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPError(504, "pipeline timed out")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
