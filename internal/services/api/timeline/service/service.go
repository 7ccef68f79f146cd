// Package service contains timeline workflows
package service

import (
	"context"
	"encoding/json"

	"github.com/gr00nd/webcompat-metrics-server/internal/core/timeline"
	"github.com/gr00nd/webcompat-metrics-server/internal/modkit/repokit"
	perr "github.com/gr00nd/webcompat-metrics-server/internal/platform/errors"
	"github.com/gr00nd/webcompat-metrics-server/internal/platform/logger"
	"github.com/gr00nd/webcompat-metrics-server/internal/services/api/timeline/domain"
	"github.com/gr00nd/webcompat-metrics-server/internal/services/api/timeline/repo"
)

// timestamp render forms, always suffixed with a literal Z
const (
	hourlyStamp = "2006-01-02T15:04:05"
	weeklyStamp = "2006-01-02"
)

// Service defines the timeline service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the timeline service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	log    logger.Logger
}

// New constructs a timeline service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], log logger.Logger) *Svc {
	if db == nil {
		panic("timeline.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("timeline.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, log: log}
}

// Category returns the hourly issue counts for one milestone over a window
func (s *Svc) Category(ctx context.Context, in domain.CategoryInput) (domain.Timeline, error) {
	if !timeline.ValidCategory(in.Category) {
		return domain.Timeline{}, perr.InvalidArgf("unknown category %q", in.Category)
	}

	start, end, ok := timeline.NormalizeRange(in.Range.From, in.Range.To)
	if !ok {
		return domain.Timeline{}, perr.Validationf("invalid date range %q to %q", in.Range.From, in.Range.To)
	}
	s.log.Info().Str("category", in.Category).Str("start", start).Str("end", end).Msg("timeline window")

	rows, err := s.Repo.CountsByCategory(ctx, in.Category, start, end)
	if err != nil {
		return domain.Timeline{}, perr.DBf("category counts: %v", err)
	}

	return domain.Timeline{
		About:      "Hourly " + in.Category + " issues count",
		DateFormat: "w3c",
		Timeline:   render(rows, hourlyStamp),
	}, nil
}

// Weekly returns the weekly issue totals over a window
func (s *Svc) Weekly(ctx context.Context, in domain.WeeklyInput) (domain.Timeline, error) {
	start, end, ok := timeline.NormalizeRange(in.Range.From, in.Range.To)
	if !ok {
		return domain.Timeline{}, perr.Validationf("invalid date range %q to %q", in.Range.From, in.Range.To)
	}
	s.log.Info().Str("start", start).Str("end", end).Msg("weekly window")

	rows, err := s.Repo.WeeklyCounts(ctx, start, end)
	if err != nil {
		return domain.Timeline{}, perr.DBf("weekly counts: %v", err)
	}

	return domain.Timeline{
		About:      "Weekly issues count",
		DateFormat: "w3c",
		Timeline:   render(rows, weeklyStamp),
	}, nil
}

// Slice cuts a caller supplied envelope down to the requested window.
// Unparseable dates empty the timeline rather than erroring; the envelope
// itself still has to be well formed JSON with a timeline field
func (s *Svc) Slice(ctx context.Context, in domain.SliceInput) (json.RawMessage, error) {
	out, err := timeline.SliceJSON(in.Envelope, in.Range.From, in.Range.To)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(out), nil
}

// render converts store rows to wire entries with the Z suffix convention
func render(rows []repo.CountRow, stamp string) []domain.Entry {
	out := make([]domain.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Entry{
			Count:     r.Count,
			Timestamp: r.Timestamp.UTC().Format(stamp) + "Z",
		})
	}
	return out
}
