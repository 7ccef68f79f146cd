// Package http provides http transport for timelines
package http

import (
	stdhttp "net/http"

	"github.com/gr00nd/webcompat-metrics-server/internal/core/timeline"
	"github.com/gr00nd/webcompat-metrics-server/internal/modkit/httpkit"
	perr "github.com/gr00nd/webcompat-metrics-server/internal/platform/errors"
	"github.com/gr00nd/webcompat-metrics-server/internal/services/api/timeline/domain"
	svc "github.com/gr00nd/webcompat-metrics-server/internal/services/api/timeline/service"
)

// Register mounts timeline endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// weekly totals, literal route before the category wildcard
	httpkit.Get(r, "/weekly", h.weekly)

	// slice a caller supplied envelope to a window
	httpkit.PostJSON[domain.SliceInput](r, "/slice", h.slice)

	// hourly counts for one category
	httpkit.Get(r, "/{category}", h.category)
}

type handlers struct{ svc svc.Service }

// rangeArgs pulls from and to off the query string and checks their shape
func rangeArgs(r *stdhttp.Request) (domain.TimeRange, error) {
	q := r.URL.Query()
	args := map[string]string{}
	if v := q.Get("from"); v != "" {
		args["from"] = v
	}
	if v := q.Get("to"); v != "" {
		args["to"] = v
	}
	if !timeline.ValidArgs(args) {
		return domain.TimeRange{}, perr.Validationf("from and to must be YYYY-MM-DD dates")
	}
	return domain.TimeRange{From: args["from"], To: args["to"]}, nil
}

// @Summary Hourly issue counts for a category
// @Tags Timeline
// @Produce json
// @Param category path string true "Category" Enums(needsdiagnosis, needstriage, needscontact, contactready, sitewait)
// @Param from query string true "Window start YYYY-MM-DD"
// @Param to query string true "Window end YYYY-MM-DD"
// @Success 200 {object} domain.Timeline "ok"
// @Router /timeline/{category} [get]
func (h *handlers) category(r *stdhttp.Request) (any, error) {
	rng, err := rangeArgs(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Category(r.Context(), domain.CategoryInput{
		Category: httpkit.Param(r, "category"),
		Range:    rng,
	})
}

// @Summary Weekly issue totals
// @Tags Timeline
// @Produce json
// @Param from query string true "Window start YYYY-MM-DD"
// @Param to query string true "Window end YYYY-MM-DD"
// @Success 200 {object} domain.Timeline "ok"
// @Router /timeline/weekly [get]
func (h *handlers) weekly(r *stdhttp.Request) (any, error) {
	rng, err := rangeArgs(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Weekly(r.Context(), domain.WeeklyInput{Range: rng})
}

// @Summary Slice a timeline envelope to a window
// @Tags Timeline
// @Accept json
// @Produce json
// @Param payload body domain.SliceInput true "Envelope and window"
// @Success 200 {object} domain.Timeline "ok"
// @Router /timeline/slice [post]
func (h *handlers) slice(r *stdhttp.Request, in domain.SliceInput) (any, error) {
	return h.svc.Slice(r.Context(), in)
}
