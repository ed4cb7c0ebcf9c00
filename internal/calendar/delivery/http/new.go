package http

import (
	"github.com/gin-gonic/gin"

	"llm-personal-assistant/internal/calendar"
	pkgLog "llm-personal-assistant/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	ListEvents(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l pkgLog.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
