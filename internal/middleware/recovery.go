package middleware

import (
	"runtime/debug"

	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the generic 500 envelope. The route
// template is logged instead of the raw path so list queries stay out of logs.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			logger.Errorf(c.Request.Context(), "middleware.Recovery: %s %s: %v\n%s",
				c.Request.Method, route, rec, debug.Stack())

			response.PanicError(c, rec)
			c.Abort()
		}()
		c.Next()
	}
}
