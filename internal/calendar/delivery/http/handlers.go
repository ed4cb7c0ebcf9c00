package http

import (
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "llm-personal-assistant/pkg/errors"
	"llm-personal-assistant/pkg/gcalendar"
	"llm-personal-assistant/pkg/response"
)

type listEventsReq struct {
	Days int `form:"days"`
}

type eventResp struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	HtmlLink    string    `json:"html_link,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

type listEventsResp struct {
	Events []eventResp `json:"events"`
	Days   int         `json:"days"`
}

func newListEventsResp(events []gcalendar.Event, days int) listEventsResp {
	out := listEventsResp{Events: make([]eventResp, len(events)), Days: days}
	for i, e := range events {
		out.Events[i] = eventResp{
			ID:          e.ID,
			Summary:     e.Summary,
			Description: e.Description,
			Location:    e.Location,
			HtmlLink:    e.HtmlLink,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
		}
	}
	return out
}

// ListEvents godoc
// @Summary     List upcoming calendar events
// @Description Returns events starting within the next N days, soonest first.
// @Tags        Calendar
// @Produce     json
// @Param       days query int false "Window in days (default: 7)"
// @Success     200 {object} listEventsResp
// @Failure     502 {object} response.Resp "Upstream Failure"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	if req.Days <= 0 {
		req.Days = 7
	}

	events, err := h.uc.ListUpcoming(ctx, req.Days)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUpcoming: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(502, "calendar unavailable"))
		return
	}

	response.OK(c, newListEventsResp(events, req.Days))
}
