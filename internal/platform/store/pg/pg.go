// Package pg owns the pgx connection pool and query tracing seam
package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds what we need to open a pool
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
}

// QueryEvent describes one executed statement for tracing
type QueryEvent struct {
	SQL       string
	Args      []any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives query events. Implementations must be cheap
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// PG wraps a pgxpool with the tracing config the adapter needs
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

// Open parses the URL and builds the pool. It does not ping;
// callers own readiness checks
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("pg: empty connection url")
	}

	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse config: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("pg: new pool: %w", err)
	}

	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close releases the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
