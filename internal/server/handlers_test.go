package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/config"
	"github.com/startwise/startwise/internal/corpus"
	"github.com/startwise/startwise/internal/llm"
	"github.com/startwise/startwise/internal/models"
	"github.com/startwise/startwise/internal/search"
)

func testServer(t *testing.T, gen llm.Generator) *Server {
	t.Helper()
	logger := zap.NewNop()

	store := corpus.NewStore("unused.json", logger)
	store.Replace([]*models.StartupRecord{
		{
			Name:        "Stripe",
			Description: "Online payment processing platform for internet businesses",
			Source:      "YC",
			Categories:  []string{"FinTech"},
		},
		{
			Name:        "ClassCraft",
			Description: "Gamified learning platform for schools",
			Source:      "Product Hunt",
			Categories:  []string{"EdTech"},
		},
	})

	engine := search.NewEngine(store, nil, logger)
	pipeline := search.NewPipeline(engine, gen, logger)
	cfg := &config.ServerConfig{Host: "localhost", Port: 8080, CacheTTLSeconds: 60}
	return NewServer(pipeline, engine, store, cfg, logger)
}

func postJSON(t *testing.T, handler http.Handler, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestHandleQuery(t *testing.T) {
	gen := &llm.MockGenerator{Response: "Stripe processes online payments."}
	srv := testServer(t, gen)
	router := srv.Router()

	w := postJSON(t, router, "/api/v1/query", `{"question": "Stripe"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Answer    string `json:"answer"`
		RequestID string `json:"request_id"`
		Strategy  string `json:"search_strategy"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Answer != "Stripe processes online payments." {
		t.Errorf("answer = %q", resp.Answer)
	}
	if resp.RequestID == "" {
		t.Error("request_id missing")
	}
	if resp.Strategy != models.StrategyStartupFocused {
		t.Errorf("search_strategy = %q", resp.Strategy)
	}
}

func TestHandleQueryMissingQuestion(t *testing.T) {
	srv := testServer(t, &llm.MockGenerator{})
	router := srv.Router()

	for _, body := range []string{`{}`, `{"question": "  "}`, `not json`} {
		w := postJSON(t, router, "/api/v1/query", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestHandleQueryCaching(t *testing.T) {
	gen := &llm.MockGenerator{Response: "cached answer test"}
	srv := testServer(t, gen)
	router := srv.Router()

	postJSON(t, router, "/api/v1/query", `{"question": "Stripe"}`)
	w := postJSON(t, router, "/api/v1/query", `{"question": "Stripe"}`)

	var resp struct {
		Cached bool `json:"cached"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Cached {
		t.Error("second identical query should be served from cache")
	}
	if len(gen.Prompts) != 1 {
		t.Errorf("model called %d times, want 1", len(gen.Prompts))
	}
}

func TestHandleQueryModelFailure(t *testing.T) {
	gen := &llm.MockGenerator{Err: llm.ErrUnavailable}
	srv := testServer(t, gen)
	router := srv.Router()

	w := postJSON(t, router, "/api/v1/query", `{"question": "payment processing platform"}`)
	// Model failure degrades to a synthesized answer, never a server error.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Answer   string `json:"answer"`
		Fallback bool   `json:"fallback"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Fallback || resp.Answer == "" {
		t.Errorf("expected fallback answer, got %+v", resp)
	}
}

func TestHandleSearch(t *testing.T) {
	srv := testServer(t, &llm.MockGenerator{})
	router := srv.Router()

	w := postJSON(t, router, "/api/v1/search", `{"question": "teleportation app"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var result models.SearchResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Intent.Type != models.IntentImpossible {
		t.Errorf("intent = %s", result.Intent.Type)
	}
	if result.Strategy != models.StrategyHybridFallback {
		t.Errorf("strategy = %s", result.Strategy)
	}
}

func TestHandleDiscover(t *testing.T) {
	srv := testServer(t, &llm.MockGenerator{Err: llm.ErrUnavailable})
	router := srv.Router()

	w := postJSON(t, router, "/api/v1/discover", `{"idea": "online payment platform that helps small businesses accept payments"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Understanding *search.IdeaUnderstanding `json:"understanding"`
		Similar       *search.DiscoveryResult   `json:"similar_startups"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Understanding == nil || resp.Understanding.Industry != "Financial Technology" {
		t.Errorf("understanding = %+v", resp.Understanding)
	}
	if resp.Similar == nil || resp.Similar.Metadata.TotalQueries == 0 {
		t.Errorf("similar = %+v", resp.Similar)
	}

	w = postJSON(t, router, "/api/v1/discover", `{"idea": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty idea: status = %d, want 400", w.Code)
	}
}

func TestHandleCategories(t *testing.T) {
	srv := testServer(t, &llm.MockGenerator{})
	router := srv.Router()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Categories map[string]int `json:"categories"`
		Total      int            `json:"total"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Categories["FinTech"] != 1 || resp.Categories["EdTech"] != 1 {
		t.Errorf("categories = %v", resp.Categories)
	}
	if resp.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Total)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t, &llm.MockGenerator{})
	router := srv.Router()

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
