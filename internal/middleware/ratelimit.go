package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quotepulse/internal/domain/dto"
)

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// RateLimiter limits the number of requests per client IP with a fixed window.
//
// Behavior:
//   - Allows up to limit requests per window for each client IP.
//   - A limit <= 0 disables the middleware.
//   - If the limit is exceeded, returns HTTP 429 Too Many Requests.
//
// State is in memory and per instance.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{"detail": "rate limit exceeded"}
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) > window {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > limit
		// drop stale entries so the map does not grow with every IP ever seen
		if len(clients) > 10000 {
			for k, v := range clients {
				if now.Sub(v.windowStart) > window {
					delete(clients, k)
				}
			}
		}
		mu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}

		c.Next()
	}
}
