package http

import (
	"github.com/gin-gonic/gin"

	"dayflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware; the LLM-backed parse
// endpoint is additionally rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", mw.Auth(), mw.RateLimit(), h.CreateFromText)
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.POST("/rollover", mw.Auth(), h.Rollover)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.POST("/:id/complete", mw.Auth(), h.Complete)
	}
}
