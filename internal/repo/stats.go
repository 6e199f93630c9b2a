package repo

import (
	"context"
	"database/sql"
)

// MonthCount is one bucket of the user-growth series: calendar month (1-12)
// and how many users were created in it.
type MonthCount struct {
	Month int
	Count int
}

// SourceCount is one bucket of the traffic breakdown.
type SourceCount struct {
	Source string
	Count  int
}

// ==========================
// StatsRepo
// ==========================
type StatsRepo struct {
	DB *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{DB: db}
}

// ==========================
// Scalar aggregates
// ==========================
func (r *StatsRepo) TotalUsers(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *StatsRepo) ActiveSessions(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE is_active`).Scan(&n)
	return n, err
}

func (r *StatsRepo) Revenue(ctx context.Context) (float64, error) {
	var sum float64
	err := r.DB.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&sum)
	return sum, err
}

// ==========================
// Monthly user growth (chronological, capped at six buckets)
// ==========================
func (r *StatsRepo) MonthlyUserGrowth(ctx context.Context) ([]MonthCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*) AS count
		FROM users
		GROUP BY month
		ORDER BY month
		LIMIT 6
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthCount
	for rows.Next() {
		var mc MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		out = append(out, mc)
	}
	return out, rows.Err()
}

// ==========================
// Traffic-source breakdown
// ==========================
func (r *StatsRepo) TrafficSources(ctx context.Context) ([]SourceCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT source, COUNT(*) AS count
		FROM payments
		GROUP BY source
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SourceCount
	for rows.Next() {
		var sc SourceCount
		if err := rows.Scan(&sc.Source, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// ==========================
// Session sweep (scheduler)
// ==========================
// DeactivateStaleSessions marks sessions older than ttlHours inactive and
// returns how many rows changed.
func (r *StatsRepo) DeactivateStaleSessions(ctx context.Context, ttlHours int) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE sessions
		SET is_active = FALSE
		WHERE is_active AND created_at < now() - make_interval(hours => $1)
	`, ttlHours)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
