package restapi

import (
	"time"

	"starknet_balance_checker/internal/app/port"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware logs one line per request through the application logger.
func LoggerMiddleware(logger port.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			logger.Error("HTTP request", append(args, "errors", c.Errors.String())...)
			return
		}
		logger.Debug("HTTP request", args...)
	}
}
