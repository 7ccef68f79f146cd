package pg

import (
	"context"
	"strings"

	"github.com/gr00nd/webcompat-metrics-server/internal/platform/logger"
)

// zlTracer logs query events through zerolog
type zlTracer struct {
	log logger.Logger
}

// Tracer returns a QueryTracer that writes to log
func Tracer(log logger.Logger) QueryTracer {
	return &zlTracer{log: log}
}

func (t *zlTracer) OnQuery(ctx context.Context, ev QueryEvent) {
	e := t.log.Debug()
	switch {
	case ev.Err != nil:
		e = t.log.Error().Err(ev.Err)
	case ev.Slow:
		e = t.log.Warn()
	}
	e.Str("sql", compact(ev.SQL)).
		Int("args", len(ev.Args)).
		Int64("elapsed_us", ev.ElapsedUS).
		Bool("slow", ev.Slow).
		Msg("pg query")
}

// compact flattens whitespace so multi-line SQL logs on one line
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
