package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cfuentesp/moodlog/backend/internal/logger"
)

// RequestID assigns each request a correlation ID, honoring a client-provided
// X-Request-ID header, and echoes it back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-ID"))
		requestID := logger.RequestIDFromContext(ctx)

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Logger emits one structured log line per request.
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.WithContext(c.Request.Context()).Info("request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}
