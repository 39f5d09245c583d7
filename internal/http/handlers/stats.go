package handlers

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Stats holds in-memory conversion counters. Nothing is persisted; a restart
// starts the counts over.
type Stats struct {
	startedAt time.Time
	started   atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
}

func NewStats() *Stats {
	return &Stats{startedAt: time.Now().UTC()}
}

func (s *Stats) ConversionStarted()   { s.started.Add(1) }
func (s *Stats) ConversionSucceeded() { s.succeeded.Add(1) }
func (s *Stats) ConversionFailed()    { s.failed.Add(1) }

func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	s := a.Stats
	a.json(w, http.StatusOK, map[string]any{
		"conversions_started":   s.started.Load(),
		"conversions_succeeded": s.succeeded.Load(),
		"conversions_failed":    s.failed.Load(),
		"uptime_seconds":        int64(time.Since(s.startedAt).Seconds()),
	})
}
