package module

import (
	"context"
	"encoding/json"

	"github.com/gr00nd/webcompat-metrics-server/internal/services/api/timeline/domain"
	tlsvc "github.com/gr00nd/webcompat-metrics-server/internal/services/api/timeline/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptTimelinePort struct{ svc tlsvc.Service }

// Category returns the hourly issue counts for one milestone over a window
func (a adaptTimelinePort) Category(ctx context.Context, in domain.CategoryInput) (domain.Timeline, error) {
	return a.svc.Category(ctx, in)
}

// Weekly returns the weekly issue totals over a window
func (a adaptTimelinePort) Weekly(ctx context.Context, in domain.WeeklyInput) (domain.Timeline, error) {
	return a.svc.Weekly(ctx, in)
}

// Slice cuts a caller supplied envelope down to the requested window
func (a adaptTimelinePort) Slice(ctx context.Context, in domain.SliceInput) (json.RawMessage, error) {
	return a.svc.Slice(ctx, in)
}
