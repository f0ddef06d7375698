package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger tags every request with an id and logs method, status, latency,
// client and path once the handler chain finishes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.Printf("[%s] %s | %d | %v | %s | %s",
			requestID[:8],
			c.Request.Method,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			path,
		)

		for _, e := range c.Errors {
			log.Printf("[%s] Error: %v", requestID[:8], e.Err)
		}
	}
}
