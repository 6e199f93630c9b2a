package client

import "github.com/crucial707/auth-dashboard/internal/models"

// RawStats is the typed union of the two response shapes the stats endpoint
// has been observed to produce: the normalized {summary, chartData} object,
// or a raw aggregate with top-level series arrays. Exactly one side is
// populated; Normalize converts the raw side.
type RawStats struct {
	Summary   *models.StatsSummary `json:"summary"`
	ChartData *models.ChartData    `json:"chartData"`

	Users   []int    `json:"users"`
	Revenue []int    `json:"revenue"`
	Labels  []string `json:"labels"`
}

// Fallback literals used when a summed series is zero or a series is absent.
const (
	fallbackTotalUsers     = 12402
	fallbackActiveSessions = 842
	fallbackRevenue        = 48200

	// userScale converts summed per-period counts into a headline figure.
	userScale = 100
)

func defaultLabels() []string {
	return []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
}

// Normalize is the pure conversion from a raw aggregate response to the
// complete payload the views render. Missing arrays become six zero-filled
// periods; zero sums fall back to the demo literals; growth percentages are
// the same fixed constants the server emits, never computed.
func Normalize(raw RawStats) models.StatsResponse {
	users := raw.Users
	revenue := raw.Revenue

	totalRev := 0
	for _, v := range revenue {
		totalRev += v
	}
	totalUsr := 0
	for _, v := range users {
		totalUsr += v
	}
	totalUsr *= userScale

	if totalUsr == 0 {
		totalUsr = fallbackTotalUsers
	}
	if totalRev == 0 {
		totalRev = fallbackRevenue
	}

	if len(users) == 0 {
		users = make([]int, 6)
	}
	if len(revenue) == 0 {
		revenue = make([]int, 6)
	}
	labels := raw.Labels
	if len(labels) == 0 {
		labels = defaultLabels()
	}

	return models.StatsResponse{
		Summary: models.StatsSummary{
			TotalUsers:     totalUsr,
			ActiveSessions: fallbackActiveSessions,
			Revenue:        float64(totalRev),
			UserGrowth:     12.5,
			SessionGrowth:  -2.4,
			RevenueGrowth:  8.2,
		},
		ChartData: models.ChartData{
			Users:   users,
			Revenue: revenue,
			Labels:  labels,
		},
	}
}
