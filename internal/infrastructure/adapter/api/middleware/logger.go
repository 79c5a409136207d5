package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger writes one entry per request once the handler chain has finished.
// Server errors are logged at warn so they stand out from page views.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"route":      c.FullPath(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"bytes":      c.Writer.Size(),
		}
		if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
			fields["request_id"] = requestID
		}
		if location := c.Writer.Header().Get("Location"); location != "" {
			fields["redirect"] = location
		}
		if userID, ok := UserID(c); ok {
			fields["user_id"] = userID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		if status >= 500 {
			logger.Warn("Request failed", fields)
			return
		}
		logger.Info("Request served", fields)
	}
}
