package client

import (
	"encoding/json"
	"strconv"

	"github.com/crucial707/auth-dashboard/internal/models"
)

// User is a directory entry as the facade presents it. IDs are strings
// because the merged list mixes numeric server IDs with demo IDs like
// "demo-1"; UserID decodes both.
type User struct {
	ID        UserID `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	IsReal    bool   `json:"isReal"`
}

// UserID accepts either a JSON number or a JSON string.
type UserID string

func (u *UserID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*u = UserID(s)
		return nil
	}
	*u = UserID(string(b))
	return nil
}

func (u UserID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.Atoi(string(u)); err == nil {
		return []byte(u), nil
	}
	return json.Marshal(string(u))
}

// MockStats is the facade's offline stats payload. Same figures as the
// server's demo payload but an independent literal: the facade must work
// with no server at all. No traffic split is included; the views hide the
// traffic card when it is absent.
func MockStats() models.StatsResponse {
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
		},
	}
}

// DemoUsers returns the fixed five-entry demo list, each flagged non-real.
func DemoUsers() []User {
	return []User{
		{ID: "demo-1", Name: "John Doe", Email: "john@example.com", CreatedAt: "Jan 15, 2024", IsReal: false},
		{ID: "demo-2", Name: "Jane Smith", Email: "jane@example.com", CreatedAt: "Feb 20, 2024", IsReal: false},
		{ID: "demo-3", Name: "Bob Johnson", Email: "bob@example.com", CreatedAt: "Mar 10, 2024", IsReal: false},
		{ID: "demo-4", Name: "Alice Williams", Email: "alice@example.com", CreatedAt: "Apr 5, 2024", IsReal: false},
		{ID: "demo-5", Name: "Charlie Brown", Email: "charlie@example.com", CreatedAt: "May 18, 2024", IsReal: false},
	}
}
