package http

import (
	"github.com/gin-gonic/gin"

	"dayflow/internal/middleware"
	"dayflow/pkg/response"
)

// List godoc
// @Summary     List learned patterns
// @Description Returns the user's learned duration patterns in creation order.
// @Tags        Pattern
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/patterns [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
