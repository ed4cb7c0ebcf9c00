package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"llm-personal-assistant/pkg/response"
)

// Respond godoc
// @Summary     Answer a prompt
// @Description Records a free-text answer and runs it through the intent
// @Description pipeline: the LLM extracts tasks and events, which are then
// @Description written to the task store and calendar. Per-item failures are
// @Description reported in results without failing the request.
// @Tags        Prompts
// @Accept      json
// @Produce     json
// @Param       body body respondReq true "Prompt answer"
// @Success     200 {object} respondResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Upstream Failure"
// @Router      /api/v1/prompts/respond [POST]
func (h *handler) Respond(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	req, err := h.processRespondReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Respond(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Respond: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRespondResp(out))
}

// ListByCadence godoc
// @Summary     List prompts for a cadence
// @Description Returns the catalog prompts scheduled at the given cadence.
// @Tags        Prompts
// @Produce     json
// @Param       cadence path string true "daily, weekly or monthly"
// @Success     200 {object} promptListResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/prompts/{cadence} [GET]
func (h *handler) ListByCadence(c *gin.Context) {
	ctx := c.Request.Context()

	cadence, err := h.processCadence(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	prompts, err := h.uc.ListByCadence(ctx, cadence)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByCadence: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPromptListResp(prompts))
}
