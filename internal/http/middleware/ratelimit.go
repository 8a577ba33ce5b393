package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// cleanupThreshold bounds the tracking map; expired entries are swept
// opportunistically once it grows past this many clients.
const cleanupThreshold = 10000

type clientWindow struct {
	count     int
	resetTime time.Time
}

var rlMu sync.Mutex
var clients = make(map[string]*clientWindow)

// RateLimit is a fixed-window in-memory limiter keyed by client IP.
// Windows reset lazily on the first request after expiry.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rlMu.Lock()

		if len(clients) > cleanupThreshold {
			for key, cw := range clients {
				if now.After(cw.resetTime) {
					delete(clients, key)
				}
			}
		}

		cw, ok := clients[ip]
		if !ok || now.After(cw.resetTime) {
			clients[ip] = &clientWindow{count: 1, resetTime: now.Add(window)}
			rlMu.Unlock()
			RLRequests.WithLabelValues(c.FullPath()).Inc()
			c.Next()
			return
		}

		if cw.count >= maxRequests {
			rlMu.Unlock()
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		cw.count++
		rlMu.Unlock()

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
