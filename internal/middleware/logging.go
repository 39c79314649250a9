package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sandipmavi/Backend-yt/internal/logging"
)

// RequestLogger logs request details through the structured logger
func RequestLogger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.LogHTTPRequest(
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
