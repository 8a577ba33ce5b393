// Package ws streams live accounting stats to the admin dashboard.
package ws

import (
	"net/http"
	"time"

	"addreel/internal/logger"
	"addreel/internal/service"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StatsStream pushes the analytics snapshot and wallet state to a
// connected dashboard at a fixed interval.
type StatsStream struct {
	points    *service.PointsService
	analytics *service.AnalyticsService
	interval  time.Duration
}

func NewStatsStream(points *service.PointsService, analytics *service.AnalyticsService, interval time.Duration) *StatsStream {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &StatsStream{points: points, analytics: analytics, interval: interval}
}

type statsPayload struct {
	Type         string  `json:"type"`
	Points       any     `json:"points"`
	Analytics    any     `json:"analytics"`
	TotalRevenue float64 `json:"total_revenue"`
}

// Serve upgrades the request and writes snapshots until the client goes
// away. Reads are drained only to notice the close frame.
func (s *StatsStream) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("stats stream upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		payload := statsPayload{
			Type:         "stats",
			Points:       s.points.GetBalance(ctx),
			Analytics:    s.analytics.Snapshot(ctx),
			TotalRevenue: s.analytics.TotalRevenue(ctx),
		}
		if err := conn.WriteJSON(payload); err != nil {
			return
		}

		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
