package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id so log lines from one federated
// call can be correlated across the gateway and the stores. An id supplied by
// the caller is propagated unchanged.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestId", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger writes one structured line per completed request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("requestId", c.GetString("requestId")).
			Msg("Request completed")
	}
}
