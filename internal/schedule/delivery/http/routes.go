package http

import (
	"github.com/gin-gonic/gin"

	"dayflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Generation endpoints go through the LLM, so they are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedules := rg.Group("/schedules")
	{
		schedules.GET("/:date", mw.Auth(), h.GetDay)
		schedules.POST("/:date/generate", mw.Auth(), mw.RateLimit(), h.GenerateDay)
		schedules.PUT("/:date/hours", mw.Auth(), mw.RateLimit(), h.UpdateHours)
		schedules.POST("/generate-week", mw.Auth(), mw.RateLimit(), h.GenerateWeek)
		schedules.POST("/drop", mw.Auth(), h.Drop)
		schedules.POST("/items/:id/toggle", mw.Auth(), h.ToggleItem)
	}
}
