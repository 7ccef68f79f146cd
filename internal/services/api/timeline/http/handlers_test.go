package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "github.com/gr00nd/webcompat-metrics-server/internal/platform/net/http"
	"github.com/gr00nd/webcompat-metrics-server/internal/services/api/timeline/domain"
)

// fakeService returns canned answers and records inputs
type fakeService struct {
	categoryIn domain.CategoryInput
	weeklyIn   domain.WeeklyInput
	sliceIn    domain.SliceInput
}

func (f *fakeService) Category(_ context.Context, in domain.CategoryInput) (domain.Timeline, error) {
	f.categoryIn = in
	return domain.Timeline{
		About:      "Hourly " + in.Category + " issues count",
		DateFormat: "w3c",
		Timeline:   []domain.Entry{{Count: 7, Timestamp: "2021-01-01T00:00:00Z"}},
	}, nil
}

func (f *fakeService) Weekly(_ context.Context, in domain.WeeklyInput) (domain.Timeline, error) {
	f.weeklyIn = in
	return domain.Timeline{
		About:      "Weekly issues count",
		DateFormat: "w3c",
		Timeline:   []domain.Entry{{Count: 80, Timestamp: "2021-01-04Z"}},
	}, nil
}

func (f *fakeService) Slice(_ context.Context, in domain.SliceInput) (json.RawMessage, error) {
	f.sliceIn = in
	return json.RawMessage(`{"timeline":[]}`), nil
}

func newRouter(f *fakeService) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/timeline", func(rr phttp.Router) {
		Register(rr, f)
	})
	return mux
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Status     string          `json:"status"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func do(t *testing.T, h stdhttp.Handler, method, target, body string) (int, envelope) {
	t.Helper()

	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v body=%s", err, rec.Body.String())
		}
	}
	return rec.Code, env
}

func TestCategoryRoute(t *testing.T) {
	t.Parallel()

	f := &fakeService{}
	h := newRouter(f)

	code, env := do(t, h, stdhttp.MethodGet, "/timeline/needsdiagnosis?from=2021-01-01&to=2021-01-05", "")
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%+v", code, env)
	}

	var tl domain.Timeline
	if err := json.Unmarshal(env.Data, &tl); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if tl.About != "Hourly needsdiagnosis issues count" {
		t.Fatalf("about = %q", tl.About)
	}
	if f.categoryIn.Category != "needsdiagnosis" {
		t.Fatalf("service category = %q", f.categoryIn.Category)
	}
	if f.categoryIn.Range.From != "2021-01-01" || f.categoryIn.Range.To != "2021-01-05" {
		t.Fatalf("service range = %+v", f.categoryIn.Range)
	}
}

func TestCategoryRoute_MissingArgs(t *testing.T) {
	t.Parallel()

	h := newRouter(&fakeService{})

	code, env := do(t, h, stdhttp.MethodGet, "/timeline/needsdiagnosis?from=2021-01-01", "")
	if code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if env.Error == "" {
		t.Fatalf("envelope error empty")
	}
}

func TestCategoryRoute_BadDates(t *testing.T) {
	t.Parallel()

	h := newRouter(&fakeService{})

	code, _ := do(t, h, stdhttp.MethodGet, "/timeline/needsdiagnosis?from=x&to=2021-01-05", "")
	if code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

func TestWeeklyRoute(t *testing.T) {
	t.Parallel()

	f := &fakeService{}
	h := newRouter(f)

	code, env := do(t, h, stdhttp.MethodGet, "/timeline/weekly?from=2021-01-01&to=2021-01-31", "")
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%+v", code, env)
	}
	if f.weeklyIn.Range.From != "2021-01-01" {
		t.Fatalf("service range = %+v", f.weeklyIn.Range)
	}

	var tl domain.Timeline
	if err := json.Unmarshal(env.Data, &tl); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if tl.About != "Weekly issues count" {
		t.Fatalf("about = %q", tl.About)
	}
}

func TestSliceRoute(t *testing.T) {
	t.Parallel()

	f := &fakeService{}
	h := newRouter(f)

	body := `{"range":{"from":"2021-01-01","to":"2021-01-02"},"envelope":{"timeline":[]}}`
	code, env := do(t, h, stdhttp.MethodPost, "/timeline/slice", body)
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%+v", code, env)
	}
	if f.sliceIn.Range.From != "2021-01-01" || f.sliceIn.Range.To != "2021-01-02" {
		t.Fatalf("service range = %+v", f.sliceIn.Range)
	}
}

func TestSliceRoute_MissingEnvelope(t *testing.T) {
	t.Parallel()

	h := newRouter(&fakeService{})

	code, _ := do(t, h, stdhttp.MethodPost, "/timeline/slice", `{"range":{"from":"2021-01-01","to":"2021-01-02"}}`)
	if code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

func TestSliceRoute_EmptyBody(t *testing.T) {
	t.Parallel()

	h := newRouter(&fakeService{})

	code, _ := do(t, h, stdhttp.MethodPost, "/timeline/slice", "")
	if code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}
