package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quotepulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status code,
// request latency, and request ID (if available).
//
// Behavior:
//   - Derives a logger carrying request_id and stores it in the request
//     context, so downstream code can log through logger.Ctx(ctx).
//   - After the request is processed, logs one http_request line.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	{"level":"info","request_id":"123e4567-e89b-12d3-a456-426614174000","method":"GET","path":"/api/stock/AAPL","status":200,"latency_ms":215,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		rid, _ := c.Get(RequestIDKey)
		reqLog := logger.L().With().Str("request_id", toString(rid)).Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		ev := reqLog.Info()
		if status >= 500 {
			ev = reqLog.Error()
		}
		ev.Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
