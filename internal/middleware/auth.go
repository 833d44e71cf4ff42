package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"dayflow/internal/model"
	"dayflow/pkg/authclient"
	"dayflow/pkg/response"
)

const scopeKey = "scope"

// Auth validates the bearer token against the auth backend and stores the
// resulting Scope on the gin context. Verified tokens are cached with a TTL
// so repeated requests skip the network round trip.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		user, ok := m.tokenCache.Get(token)
		if !ok {
			var err error
			user, err = m.verifier.Verify(c.Request.Context(), token)
			if err != nil {
				if err != authclient.ErrInvalidToken {
					m.l.Warnf(c.Request.Context(), "auth backend error: %v", err)
				}
				response.Unauthorized(c)
				c.Abort()
				return
			}
			m.tokenCache.Add(token, user)
		}

		c.Set(scopeKey, model.Scope{UserID: user.ID, Email: user.Email})
		c.Next()
	}
}

func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ScopeFromContext returns the Scope placed by Auth. The zero Scope means
// the route was not authenticated.
func ScopeFromContext(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
