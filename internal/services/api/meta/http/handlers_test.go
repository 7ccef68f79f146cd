package http

import (
	stdctx "context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "github.com/gr00nd/webcompat-metrics-server/internal/platform/net/http"
)

type okPinger struct{}

func (okPinger) Ping(stdctx.Context) error { return nil }

func newRouter(d Deps) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/meta", func(rr phttp.Router) {
		Register(rr, d)
	})
	return mux
}

func get(t *testing.T, h stdhttp.Handler, target string) (int, json.RawMessage) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, target, nil))

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, rec.Body.String())
	}
	return rec.Code, env.Data
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := newRouter(Deps{ServiceName: "webcompat-metrics-api", StartedAt: time.Now()})

	code, data := get(t, h, "/meta/health")
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var hr HealthResponse
	if err := json.Unmarshal(data, &hr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !hr.OK || hr.Service != "webcompat-metrics-api" {
		t.Fatalf("health = %+v", hr)
	}
}

func TestReady_SkippedWithoutPG(t *testing.T) {
	t.Parallel()

	h := newRouter(Deps{ServiceName: "x", StartedAt: time.Now()})

	code, data := get(t, h, "/meta/ready")
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var rr ReadyResponse
	if err := json.Unmarshal(data, &rr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rr.Status != "degraded" || rr.Checks[0].Status != "skipped" {
		t.Fatalf("ready = %+v", rr)
	}
}

func TestReady_OKWithPinger(t *testing.T) {
	t.Parallel()

	h := newRouter(Deps{ServiceName: "x", StartedAt: time.Now(), PG: okPinger{}})

	code, data := get(t, h, "/meta/ready")
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var rr ReadyResponse
	if err := json.Unmarshal(data, &rr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rr.Status != "ok" || rr.Checks[0].Status != "ok" {
		t.Fatalf("ready = %+v", rr)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	h := newRouter(Deps{ServiceName: "x", StartedAt: time.Now()})

	code, data := get(t, h, "/meta/version")
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var v struct {
		Service string `json:"service"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Service != "webcompat-metrics-api" || v.Version == "" {
		t.Fatalf("version = %+v", v)
	}
}
