// Package repo provides postgres access for timeline counts
package repo

import (
	"context"
	"time"

	"github.com/gr00nd/webcompat-metrics-server/internal/modkit/repokit"
)

// Repo is the minimal persistence surface for timelines
type Repo interface {
	CountsByCategory(ctx context.Context, category, start, end string) ([]CountRow, error)
	WeeklyCounts(ctx context.Context, start, end string) ([]CountRow, error)
}

// CountRow is one dated count straight from the store
type CountRow struct {
	Count     int64
	Timestamp time.Time
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// CountsByCategory reads hourly issue counts for one milestone inside a
// half-open window, ascending so the dashboard can plot them directly
func (r *queries) CountsByCategory(ctx context.Context, category, start, end string) ([]CountRow, error) {
	const sql = `
select count, timestamp
from issues_count
where milestone = $1
and timestamp >= $2
and timestamp < $3
order by timestamp asc
`
	rows, err := r.q.Query(ctx, sql, category, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CountRow
	for rows.Next() {
		var rr CountRow
		if err := rows.Scan(&rr.Count, &rr.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// WeeklyCounts reads one total per week keyed by its monday
func (r *queries) WeeklyCounts(ctx context.Context, start, end string) ([]CountRow, error) {
	const sql = `
select count, monday
from weekly_total
where monday >= $1
and monday < $2
order by monday asc
`
	rows, err := r.q.Query(ctx, sql, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CountRow
	for rows.Next() {
		var rr CountRow
		if err := rows.Scan(&rr.Count, &rr.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
