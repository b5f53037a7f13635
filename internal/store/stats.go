package store

import (
	"fmt"
	"time"
)

type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	MessagesSent     int64           `json:"messages_sent"`
	MessagesFailed   int64           `json:"messages_failed"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// Stats summarises the recorded metrics relative to now.
func (d *DB) Stats(now time.Time) (*Stats, error) {
	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	stats := &Stats{}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{dayStart}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
		{&stats.MessagesSent, `SELECT COUNT(*) FROM submissions WHERE outcome = 'success'`, nil},
		{&stats.MessagesFailed, `SELECT COUNT(*) FROM submissions WHERE outcome = 'error'`, nil},
	}
	for _, c := range counts {
		if err := d.QueryRow(c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("querying stats: %w", err)
		}
	}

	recent, err := d.RecentVisitors(50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

// RecentVisitors returns the latest visits, newest first.
func (d *DB) RecentVisitors(limit int) ([]VisitorMetric, error) {
	rows, err := d.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying visitors: %w", err)
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
