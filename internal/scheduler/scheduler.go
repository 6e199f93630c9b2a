package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/crucial707/auth-dashboard/internal/metrics"
	"github.com/crucial707/auth-dashboard/internal/repo"
	"github.com/robfig/cron/v3"
)

// sweepInterval is the cron expression for the session sweep (top of every hour).
const sweepInterval = "0 * * * *"

// Run starts a background sweeper that marks sessions inactive once they are
// older than ttlHours, so the active-session aggregate decays instead of
// growing forever. Returns the cron handle so callers can Stop it on shutdown.
// A ttlHours of zero disables the sweeper and returns nil.
func Run(statsRepo *repo.StatsRepo, ttlHours int) *cron.Cron {
	if ttlHours <= 0 {
		return nil
	}

	c := cron.New()
	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := statsRepo.DeactivateStaleSessions(ctx, ttlHours)
		if err != nil {
			slog.Error("scheduler: session sweep failed", "error", err)
			return
		}
		if n > 0 {
			metrics.SessionsSweptTotal.Add(float64(n))
			slog.Info("scheduler: swept stale sessions", "count", n, "ttl_hours", ttlHours)
		}
	}

	if _, err := c.AddFunc(sweepInterval, sweep); err != nil {
		slog.Error("scheduler: invalid sweep schedule", "error", err)
		return nil
	}

	// Initial sweep so a restart doesn't wait up to an hour.
	go sweep()
	c.Start()
	return c
}
