package http

import (
	"github.com/gin-gonic/gin"

	"dayflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	patterns := rg.Group("/patterns")
	{
		patterns.GET("", mw.Auth(), h.List)
	}
}
