package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"dayflow/pkg/response"
)

// RateLimit throttles expensive generation endpoints per user. Must run
// after Auth: unauthenticated requests share one bucket keyed by client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMinute := m.cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 6
	}

	return func(c *gin.Context) {
		key := ScopeFromContext(c).UserID
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded: key=%s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
