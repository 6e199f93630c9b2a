package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crucial707/auth-dashboard/internal/metrics"
	"github.com/crucial707/auth-dashboard/internal/stats"
)

// ==========================
// StatsHandler
// ==========================
type StatsHandler struct {
	Agg *stats.Aggregator
}

// ==========================
// Get Stats (global aggregates; identity is not used for scoping)
// ==========================
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	resp, demo, err := h.Agg.Collect(r.Context())
	if err != nil {
		slog.Error("stats: aggregation failed", "error", err)
		JSONError(w, "Stats error", http.StatusInternalServerError)
		return
	}
	if demo {
		metrics.StatsDemoFallbackTotal.Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
