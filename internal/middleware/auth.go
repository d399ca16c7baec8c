package middleware

import (
	"strings"

	"rentdesk-srv/pkg/response"
	"rentdesk-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// Priority 1: Try to read token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			// Support both "Bearer <token>" and plain token
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// Priority 2: If no token in header, try cookie
		if tokenString == "" {
			cookie, err := c.Cookie(m.cookie.Name)
			if err != nil || cookie == "" {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			tokenString = cookie
		}

		payload, err := m.tokens.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Set payload and scope in context for downstream handlers
		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not listed. Must run after Auth.
func (m Middleware) RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		if _, ok := allowed[sc.Role]; !ok {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
