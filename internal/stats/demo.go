package stats

import "github.com/crucial707/auth-dashboard/internal/models"

// DemoStats is the fixed payload served when the database holds no users,
// sessions or payments. The literals are part of the observable contract:
// an empty deployment is indistinguishable from a live demo.
func DemoStats() models.StatsResponse {
	return models.StatsResponse{
		Summary: models.StatsSummary{
			TotalUsers:     12402,
			ActiveSessions: 842,
			Revenue:        48200,
			UserGrowth:     12.5,
			SessionGrowth:  -2.4,
			RevenueGrowth:  8.2,
		},
		ChartData: models.ChartData{
			Users:   []int{12, 19, 3, 5, 2, 3},
			Revenue: []int{1200, 1900, 300, 500, 200, 300},
			Labels:  []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Traffic: map[string]int{
				models.TrafficDirect:   300,
				models.TrafficSocial:   50,
				models.TrafficReferral: 100,
			},
		},
	}
}
