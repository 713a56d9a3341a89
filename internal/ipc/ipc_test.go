package ipc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/teamforge/internal/catalog"
	"github.com/anthropics/teamforge/internal/compile"
	"github.com/anthropics/teamforge/internal/domain"
	"github.com/anthropics/teamforge/internal/recommend"
)

func newTestHandler() *Handler {
	clock := compile.FixedClock{T: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
	return &Handler{
		Catalog:     catalog.All(),
		Engine:      recommend.NewEngine(catalog.All()),
		Compiler:    compile.New(catalog.All(), clock),
		DefaultLang: recommend.LangEN,
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestListQuestions(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions", nil)
	rec := httptest.NewRecorder()

	h.ListQuestions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var qs []domain.Question
	if err := json.NewDecoder(rec.Body).Decode(&qs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(qs) != catalog.Count() {
		t.Errorf("got %d questions, want %d", len(qs), catalog.Count())
	}
}

func TestRecommendEndpoint(t *testing.T) {
	h := newTestHandler()
	body := `{"question_id": 1, "answers": {"0": "A subscription platform for teams"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Recommend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var resp RecommendResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Recommendation == nil {
		t.Fatal("recommendation is null")
	}
	if len(resp.Recommendation.IDs) != 1 || resp.Recommendation.IDs[0] != "saas" {
		t.Errorf("ids = %v, want [saas]", resp.Recommendation.IDs)
	}
}

func TestRecommendEndpoint_NullRecommendation(t *testing.T) {
	h := newTestHandler()
	body := `{"question_id": 0, "answers": {}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Recommend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp RecommendResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Recommendation != nil {
		t.Errorf("recommendation = %+v, want null", resp.Recommendation)
	}
}

func TestRecommendEndpoint_Errors(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"malformed body", `{not json`, http.StatusBadRequest},
		{"invalid question id", `{"question_id": 999}`, http.StatusBadRequest},
		{"unknown language", `{"question_id": 1, "lang": "de"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Recommend(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body)
			}
		})
	}
}

func TestCompileEndpoint(t *testing.T) {
	h := newTestHandler()
	body := `{"answers": {"0": "A logistics SaaS", "3": ["react", "nodejs"], "5": ["codewriter"]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compile", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Compile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var resp CompileResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, path := range []string{"AGENTS.md", "agents-config.json", ".agent/state.json", "prompts/planner.md", "prompts/codewriter.md"} {
		if resp.Files[path] == "" {
			t.Errorf("missing output %q", path)
		}
	}
}

func TestCompileEndpoint_EmptyAnswers(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compile", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	h.Compile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, empty answers must still compile", rec.Code)
	}
	var resp CompileResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Baseline roster: planner + architect + codewriter + reviewer plus the
	// five top-level documents.
	if len(resp.Files) != 9 {
		t.Errorf("got %d files, want 9", len(resp.Files))
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := requestIDMiddleware(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing generated X-Request-ID")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "caller-id" {
		t.Errorf("X-Request-ID = %q, want caller-supplied id preserved", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the inner handler")
	})
	handler := corsMiddleware("*", inner)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/compile", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS origin header")
	}
}
