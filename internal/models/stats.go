package models

// StatsSummary holds the dashboard's scalar aggregates. The growth fields are
// percentages relative to an unspecified prior period; the server emits fixed
// constants for them (see internal/stats), so they are carried, not computed.
type StatsSummary struct {
	TotalUsers     int     `json:"totalUsers"`
	ActiveSessions int     `json:"activeSessions"`
	Revenue        float64 `json:"revenue"`
	UserGrowth     float64 `json:"userGrowth"`
	SessionGrowth  float64 `json:"sessionGrowth"`
	RevenueGrowth  float64 `json:"revenueGrowth"`
}

// ChartData holds the index-aligned chart series and the traffic split.
// Users, Revenue and Labels must always be the same length.
type ChartData struct {
	Users   []int          `json:"users"`
	Revenue []int          `json:"revenue"`
	Labels  []string       `json:"labels"`
	Traffic map[string]int `json:"traffic,omitempty"`
}

// StatsResponse is the complete /api/stats payload. It is always returned
// whole, even for an empty database (demo substitution), so consumers never
// see a partial object.
type StatsResponse struct {
	Summary   StatsSummary `json:"summary"`
	ChartData ChartData    `json:"chartData"`
}

// Traffic source categories rendered by the dashboard. Unrecognized sources
// are still accumulated into ChartData.Traffic but are not displayed.
const (
	TrafficDirect   = "Direct"
	TrafficSocial   = "Social"
	TrafficReferral = "Referral"
)
