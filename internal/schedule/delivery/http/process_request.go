package http

import (
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "dayflow/pkg/errors"
	"dayflow/pkg/response"
)

// processDateParam parses the :date URI segment in the planner's timezone.
// Parsing in UTC would shift the date one day for timezones behind UTC.
func (h *handler) processDateParam(c *gin.Context) (time.Time, error) {
	raw := c.Param("date")
	date, err := time.ParseInLocation(response.DateFormat, raw, h.cal.Location())
	if err != nil {
		return time.Time{}, pkgErrors.NewHTTPError(400, "date must be YYYY-MM-DD")
	}
	return date, nil
}

// processGenerateDayReq validates the generate-day URI param.
func (h *handler) processGenerateDayReq(c *gin.Context) (generateDayReq, error) {
	date, err := h.processDateParam(c)
	if err != nil {
		return generateDayReq{}, err
	}
	return generateDayReq{Date: date}, nil
}

// processDropReq binds and validates the drop payload.
func (h *handler) processDropReq(c *gin.Context) (dropReq, error) {
	var req dropReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processHoursReq binds the hours body + date URI param.
func (h *handler) processHoursReq(c *gin.Context) (hoursReq, error) {
	var req hoursReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	date, err := h.processDateParam(c)
	if err != nil {
		return req, err
	}
	req.Date = date
	return req, nil
}
