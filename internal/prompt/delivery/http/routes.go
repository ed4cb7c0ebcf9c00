package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	prompts := rg.Group("/prompts")
	{
		prompts.POST("/respond", h.Respond)
		prompts.GET("/:cadence", h.ListByCadence)
	}
}
