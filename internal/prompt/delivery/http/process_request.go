package http

import (
	"github.com/gin-gonic/gin"

	"llm-personal-assistant/internal/model"
	pkgErrors "llm-personal-assistant/pkg/errors"
)

// processRespondReq binds and validates the respond request body.
func (h *handler) processRespondReq(c *gin.Context) (respondReq, error) {
	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCadence validates the cadence URI param.
func (h *handler) processCadence(c *gin.Context) (model.Cadence, error) {
	cadence := model.Cadence(c.Param("cadence"))
	if !cadence.Valid() {
		return "", pkgErrors.NewHTTPError(400, "cadence must be daily, weekly or monthly")
	}
	return cadence, nil
}
