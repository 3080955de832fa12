package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/curvelab/lrplot/internal/export"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	NewServer(NewChartStore()).Register(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetSchedule(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodGet, "/v1/schedule?steps=50&warmup=5&powers=1,2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var doc export.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if doc.Steps != 50 || doc.Warmup != 5 {
		t.Fatalf("config not echoed: %+v", doc)
	}
	if len(doc.Curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(doc.Curves))
	}
	if len(doc.Curves[0].Rates) != 50 {
		t.Fatalf("curve length %d, want 50", len(doc.Curves[0].Rates))
	}
}

func TestGetScheduleRejectsInvalid(t *testing.T) {
	e := newTestEcho()

	for _, path := range []string{
		"/v1/schedule?steps=0",
		"/v1/schedule?steps=10&warmup=10",
		"/v1/schedule?lr=-1",
		"/v1/schedule?powers=abc",
		"/v1/schedule?steps=banana",
	} {
		rec := do(t, e, http.MethodGet, path, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d, want 400", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "error") {
			t.Fatalf("%s: missing error envelope: %s", path, rec.Body.String())
		}
	}
}

func TestGetChart(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodGet, "/v1/chart?steps=100&warmup=10&powers=1&dpi=92", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/png") {
		t.Fatalf("content type %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("body is not a PNG")
	}
}

func TestGetChartSVG(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodGet, "/v1/chart?steps=100&warmup=10&powers=1&dpi=92&format=svg", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Fatalf("content type %q", ct)
	}
}

func TestGetChartRejectsBadScale(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodGet, "/v1/chart?scale=loglog", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestCreateAndFetchChart(t *testing.T) {
	e := newTestEcho()

	body := `{"steps":100,"warmup_steps":10,"powers":[0.5,1],"dpi":92,"log_scale":"standard"}`
	rec := do(t, e, http.MethodPost, "/v1/charts", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var created CreateChartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if created.ID == "" || !strings.HasPrefix(created.URL, "/v1/charts/") {
		t.Fatalf("unexpected response: %+v", created)
	}

	fetch := do(t, e, http.MethodGet, created.URL, "")
	if fetch.Code != http.StatusOK {
		t.Fatalf("fetch status %d", fetch.Code)
	}
	if !bytes.HasPrefix(fetch.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("stored chart is not a PNG")
	}
}

func TestCreateChartRejectsBadBody(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodPost, "/v1/charts", `{"steps":-5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	rec = do(t, e, http.MethodPost, "/v1/charts", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestGetChartNotFound(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodGet, "/v1/charts/chart_missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestChartStoreEviction(t *testing.T) {
	s := NewChartStore()
	s.limit = 3
	for _, id := range []string{"a", "b", "c", "d"} {
		s.Put(StoredChart{ID: id, Data: []byte{1}, CreatedAt: time.Now()})
	}
	if s.Len() != 3 {
		t.Fatalf("store holds %d charts, want 3", s.Len())
	}
	if _, ok := s.Get("a"); ok {
		t.Fatalf("oldest chart should have been evicted")
	}
	if _, ok := s.Get("d"); !ok {
		t.Fatalf("newest chart missing")
	}
}
