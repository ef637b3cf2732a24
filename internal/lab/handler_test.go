package lab

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agentic_backend/internal/content"
	apphttp "agentic_backend/internal/http"
	"agentic_backend/internal/lab/disclosure"
	"agentic_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := content.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	steps := []disclosure.ProcessStep{
		{ID: 1, Title: "one", Duration: 20 * time.Millisecond, Details: []string{"a", "b"}},
		{ID: 2, Title: "two", Duration: 10 * time.Millisecond, Details: []string{"c"}},
	}
	module := &Module{handler: NewHandler(NewService(catalog.Industries, steps, nil), logger.Discard())}

	engine := gin.New()
	module.RegisterRoutes(&apphttp.RouterContext{Engine: engine, API: engine.Group("/api")})
	return engine
}

func TestListIndustries(t *testing.T) {
	engine := newTestEngine(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lab/industries", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body CatalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Industries) != 3 || body.Industries[0].ID != "ecommerce" {
		t.Fatalf("unexpected industries %+v", body.Industries)
	}
	if len(body.Steps) != 2 || body.Steps[0].DurationMs != 20 {
		t.Fatalf("unexpected steps %+v", body.Steps)
	}
}

func TestRunStreamsWholeSimulation(t *testing.T) {
	engine := newTestEngine(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lab/run?industry=education", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("unexpected content type %q", ct)
	}

	var kinds []string
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		if name, ok := strings.CutPrefix(line, "event:"); ok {
			kinds = append(kinds, name)
		}
	}
	want := []string{
		"step_started", "detail_revealed", "detail_revealed",
		"step_started", "detail_revealed",
		"completed", "result",
	}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Fatalf("event sequence %v, want %v", kinds, want)
	}
	if !strings.Contains(rec.Body.String(), "Что входит в курс 'Python для начинающих'?") {
		t.Fatalf("result misses the sample question:\n%s", rec.Body.String())
	}
}

func TestRunUnknownIndustry(t *testing.T) {
	engine := newTestEngine(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lab/run?industry=bakery", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRunRequiresIndustry(t *testing.T) {
	engine := newTestEngine(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lab/run", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "query 'industry' is required") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
