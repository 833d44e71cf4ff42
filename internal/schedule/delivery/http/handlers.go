package http

import (
	"github.com/gin-gonic/gin"

	"dayflow/internal/middleware"
	pkgErrors "dayflow/pkg/errors"
	"dayflow/pkg/response"
)

// GetDay godoc
// @Summary     Get a day's schedule
// @Description Returns the schedule and ordered items for one date.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       date path string true "Date (YYYY-MM-DD)"
// @Success     200 {object} dayResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/{date} [GET]
func (h *handler) GetDay(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDateParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetDay(ctx, middleware.ScopeFromContext(c), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDay: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDayResp(output))
}

// GenerateDay godoc
// @Summary     Generate a day's schedule
// @Description Arranges the date's tasks into timed blocks via the LLM, replacing any previous layout.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       date path string true "Date (YYYY-MM-DD)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No tasks to schedule"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/{date}/generate [POST]
func (h *handler) GenerateDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateDay(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateDay: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDayResp(output))
}

// GenerateWeek godoc
// @Summary     Generate the remaining week
// @Description Distributes pending and rolled-over tasks across the remaining weekdays and generates each day.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Success     200 {object} weekResp
// @Failure     409 {object} response.Resp "Generation already in progress"
// @Failure     422 {object} response.Resp "No days or tasks to schedule"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/generate-week [POST]
func (h *handler) GenerateWeek(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GenerateWeek(ctx, middleware.ScopeFromContext(c), generateWeekInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateWeek: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newWeekResp(output))
}

// Drop godoc
// @Summary     Resolve a drag-and-drop gesture
// @Description Applies one completed drag gesture: task onto a day or item, or item reorder/move.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body dropReq true "Drop payload"
// @Success     200 {object} dropResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/drop [POST]
func (h *handler) Drop(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDropReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Drop(ctx, middleware.ScopeFromContext(c), req.toInput(h.cal.Location()))
	if err != nil {
		h.l.Errorf(ctx, "uc.Drop: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDropResp(output))
}

// ToggleItem godoc
// @Summary     Toggle a schedule item
// @Description Flips an item's completion flag. Completing a task block completes its task.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id path string true "Schedule item ID"
// @Success     200 {object} dayResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/items/{id}/toggle [POST]
func (h *handler) ToggleItem(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "id is required"))
		return
	}

	output, err := h.uc.ToggleItem(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDayResp(output))
}

// UpdateHours godoc
// @Summary     Change a day's planned hours
// @Description Updates the planned working hours for a date and regenerates its layout.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       date path string   true "Date (YYYY-MM-DD)"
// @Param       body body hoursReq true "New hours"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Generation already in progress"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/{date}/hours [PUT]
func (h *handler) UpdateHours(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHoursReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateHours(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateHours: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDayResp(output))
}
