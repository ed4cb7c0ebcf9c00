package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"llm-personal-assistant/internal/prompt"
	pkgLog "llm-personal-assistant/pkg/log"
)

const defaultPipelineTimeout = 30 * time.Second

// Handler is the public interface for the prompt HTTP delivery layer.
type Handler interface {
	Respond(c *gin.Context)
	ListByCadence(c *gin.Context)
}

type handler struct {
	l       pkgLog.Logger
	uc      prompt.UseCase
	timeout time.Duration
}

// New creates a new HTTP handler for the prompt domain. timeout bounds the
// respond pipeline (LLM call included); zero means the default.
func New(l pkgLog.Logger, uc prompt.UseCase, timeout time.Duration) *handler {
	if timeout <= 0 {
		timeout = defaultPipelineTimeout
	}
	return &handler{
		l:       l,
		uc:      uc,
		timeout: timeout,
	}
}
