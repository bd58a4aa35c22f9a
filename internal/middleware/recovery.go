package middleware

import (
	"github.com/gin-gonic/gin"

	"search-srv/pkg/response"
)

// Recovery recovers from panics and logs the error to Discord.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, m.discord)
				c.Abort()
			}
		}()
		c.Next()
	}
}
