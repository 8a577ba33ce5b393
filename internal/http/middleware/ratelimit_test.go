package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(maxRequests int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/test", RateLimit(maxRequests, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = ip + ":12345"
	r.ServeHTTP(w, req)
	return w.Code
}

func resetClients() {
	rlMu.Lock()
	clients = make(map[string]*clientWindow)
	rlMu.Unlock()
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	resetClients()
	r := newLimitedRouter(2, time.Minute)

	for i := 0; i < 2; i++ {
		if code := doRequest(r, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want 200", i+1, code)
		}
	}
	if code := doRequest(r, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("over-limit request: code = %d, want 429", code)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	resetClients()
	r := newLimitedRouter(1, time.Minute)

	if code := doRequest(r, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first client: code = %d", code)
	}
	if code := doRequest(r, "10.0.0.2"); code != http.StatusOK {
		t.Fatalf("second client must have its own window: code = %d", code)
	}
}

func TestRateLimitWindowResetsLazily(t *testing.T) {
	resetClients()
	r := newLimitedRouter(1, 50*time.Millisecond)

	if code := doRequest(r, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	if code := doRequest(r, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("code = %d, want 429", code)
	}

	time.Sleep(60 * time.Millisecond)
	if code := doRequest(r, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("after window expiry: code = %d, want 200", code)
	}
}

func TestRateLimitCleanupSweepsExpired(t *testing.T) {
	resetClients()

	// seed the map past the cleanup threshold with expired windows
	expired := time.Now().Add(-time.Minute)
	rlMu.Lock()
	for i := 0; i < cleanupThreshold+1; i++ {
		clients[string(rune(i))+"-stale"] = &clientWindow{count: 1, resetTime: expired}
	}
	rlMu.Unlock()

	r := newLimitedRouter(1, time.Minute)
	if code := doRequest(r, "10.0.0.9"); code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}

	rlMu.Lock()
	size := len(clients)
	rlMu.Unlock()
	if size > 1 {
		t.Errorf("expired entries not swept: %d remain", size)
	}
}
