package middleware

import (
	"time"

	"github.com/Arnobrizwan/intellinote-app/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("requestID", requestID)

		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime)

		logEvent := logger.Log.Info()
		if c.Writer.Status() >= 400 {
			logEvent = logger.Log.Error()
		}

		logEvent.
			Str("requestID", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", duration).
			Msg("Incoming request")
	}
}
