package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"legalease/internal/utils"
)

// Logger emits one access line per request, in the same shape LogEvent uses
// everywhere else in the app.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		utils.LogEvent(GetRequestID(c), "http", c.Request.Method,
			fmt.Sprintf("path=%s status=%d latency_ms=%.3f ip=%s",
				c.Request.URL.Path,
				c.Writer.Status(),
				float64(time.Since(start).Microseconds())/1000.0,
				c.ClientIP(),
			))
	}
}
