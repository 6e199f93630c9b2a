package stats

import (
	"context"
	"time"

	"github.com/crucial707/auth-dashboard/internal/models"
	"github.com/crucial707/auth-dashboard/internal/repo"
)

// Growth percentages are emitted as constants, not computed from history.
// Changing them (or deriving them) would alter observable output that the
// dashboard and its demo fallback rely on.
const (
	realUserGrowth    = 10.1
	realSessionGrowth = 4.3
	realRevenueGrowth = 6.8
)

// revenuePerUser scales the user-growth series into the chart's revenue
// series. The scalar revenue aggregate still comes from payments; the chart
// series deliberately does not.
const revenuePerUser = 50

// Aggregator shapes the fixed aggregate queries into the /api/stats payload.
type Aggregator struct {
	Repo *repo.StatsRepo
}

func NewAggregator(r *repo.StatsRepo) *Aggregator {
	return &Aggregator{Repo: r}
}

// Collect runs the scalar and series aggregates and assembles the response.
// When the store is completely empty (all three scalars zero) it substitutes
// the demo payload so an empty database still renders as a live dashboard;
// the second return reports that substitution.
func (a *Aggregator) Collect(ctx context.Context) (*models.StatsResponse, bool, error) {
	totalUsers, err := a.Repo.TotalUsers(ctx)
	if err != nil {
		return nil, false, err
	}
	activeSessions, err := a.Repo.ActiveSessions(ctx)
	if err != nil {
		return nil, false, err
	}
	revenue, err := a.Repo.Revenue(ctx)
	if err != nil {
		return nil, false, err
	}

	growth, err := a.Repo.MonthlyUserGrowth(ctx)
	if err != nil {
		return nil, false, err
	}
	sources, err := a.Repo.TrafficSources(ctx)
	if err != nil {
		return nil, false, err
	}

	if totalUsers == 0 && activeSessions == 0 && revenue == 0 {
		demo := DemoStats()
		return &demo, true, nil
	}

	return Shape(totalUsers, activeSessions, revenue, growth, sources), false, nil
}

// Shape assembles a StatsResponse from raw aggregates. Pure; the chart
// invariant len(labels) == len(users) == len(revenue) holds for any input.
func Shape(totalUsers, activeSessions int, revenue float64, growth []repo.MonthCount, sources []repo.SourceCount) *models.StatsResponse {
	labels := make([]string, len(growth))
	users := make([]int, len(growth))
	chartRevenue := make([]int, len(growth))
	for i, mc := range growth {
		labels[i] = MonthLabel(mc.Month)
		users[i] = mc.Count
		chartRevenue[i] = mc.Count * revenuePerUser
	}

	traffic := map[string]int{
		models.TrafficDirect:   0,
		models.TrafficSocial:   0,
		models.TrafficReferral: 0,
	}
	for _, sc := range sources {
		traffic[sc.Source] = sc.Count
	}

	return &models.StatsResponse{
		Summary: models.StatsSummary{
			TotalUsers:     totalUsers,
			ActiveSessions: activeSessions,
			Revenue:        revenue,
			UserGrowth:     realUserGrowth,
			SessionGrowth:  realSessionGrowth,
			RevenueGrowth:  realRevenueGrowth,
		},
		ChartData: models.ChartData{
			Users:   users,
			Revenue: chartRevenue,
			Labels:  labels,
			Traffic: traffic,
		},
	}
}

// MonthLabel returns the three-letter abbreviation for a calendar month (1-12).
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()[:3]
}
