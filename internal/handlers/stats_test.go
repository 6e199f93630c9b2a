package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/auth-dashboard/internal/repo"
	"github.com/crucial707/auth-dashboard/internal/stats"
)

var errFake = errors.New("query failed")

func expectStatsQueries(mock sqlmock.Sqlmock, users, sessions int, revenue float64, growthRows, trafficRows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(users))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sessions WHERE is_active`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(sessions))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM payments`).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(revenue))
	mock.ExpectQuery(`EXTRACT\(MONTH FROM created_at\)`).
		WillReturnRows(growthRows)
	mock.ExpectQuery(`SELECT source, COUNT\(\*\)`).
		WillReturnRows(trafficRows)
}

type statsPayload struct {
	Summary struct {
		TotalUsers     int     `json:"totalUsers"`
		ActiveSessions int     `json:"activeSessions"`
		Revenue        float64 `json:"revenue"`
		UserGrowth     float64 `json:"userGrowth"`
		SessionGrowth  float64 `json:"sessionGrowth"`
		RevenueGrowth  float64 `json:"revenueGrowth"`
	} `json:"summary"`
	ChartData struct {
		Users   []int          `json:"users"`
		Revenue []int          `json:"revenue"`
		Labels  []string       `json:"labels"`
		Traffic map[string]int `json:"traffic"`
	} `json:"chartData"`
}

func TestStatsHandler_EmptyStoreServesDemoPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	expectStatsQueries(mock, 0, 0, 0,
		sqlmock.NewRows([]string{"month", "count"}),
		sqlmock.NewRows([]string{"source", "count"}))

	h := &StatsHandler{Agg: stats.NewAggregator(repo.NewStatsRepo(db))}
	req := httptest.NewRequest("GET", "/api/stats", nil)
	rr := httptest.NewRecorder()
	h.GetStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("GetStats status: got %d, want 200", rr.Code)
	}
	var out statsPayload
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Summary.TotalUsers != 12402 || out.Summary.ActiveSessions != 842 || out.Summary.Revenue != 48200 {
		t.Errorf("unexpected demo summary: %+v", out.Summary)
	}
	wantLabels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	for i, l := range wantLabels {
		if out.ChartData.Labels[i] != l {
			t.Errorf("label %d: got %q, want %q", i, out.ChartData.Labels[i], l)
		}
	}
	if out.ChartData.Traffic["Direct"] != 300 || out.ChartData.Traffic["Social"] != 50 || out.ChartData.Traffic["Referral"] != 100 {
		t.Errorf("unexpected demo traffic: %+v", out.ChartData.Traffic)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestStatsHandler_RealDataSeriesAligned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	expectStatsQueries(mock, 3, 2, 150,
		sqlmock.NewRows([]string{"month", "count"}).AddRow(1, 1).AddRow(3, 2),
		sqlmock.NewRows([]string{"source", "count"}).AddRow("Direct", 2))

	h := &StatsHandler{Agg: stats.NewAggregator(repo.NewStatsRepo(db))}
	req := httptest.NewRequest("GET", "/api/stats", nil)
	rr := httptest.NewRecorder()
	h.GetStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("GetStats status: got %d, want 200", rr.Code)
	}
	var out statsPayload
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.ChartData.Labels) != len(out.ChartData.Users) ||
		len(out.ChartData.Users) != len(out.ChartData.Revenue) {
		t.Errorf("series misaligned: %+v", out.ChartData)
	}
	if out.Summary.TotalUsers != 3 || out.ChartData.Labels[1] != "Mar" || out.ChartData.Revenue[1] != 100 {
		t.Errorf("unexpected payload: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestStatsHandler_QueryFailureIsGeneric500(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnError(errFake)

	h := &StatsHandler{Agg: stats.NewAggregator(repo.NewStatsRepo(db))}
	req := httptest.NewRequest("GET", "/api/stats", nil)
	rr := httptest.NewRecorder()
	h.GetStats(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("GetStats status: got %d, want 500", rr.Code)
	}
	var out map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["message"] != "Stats error" {
		t.Errorf("unexpected message: %q", out["message"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
