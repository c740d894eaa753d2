package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/models"
	"github.com/startwise/startwise/internal/search"
	"github.com/startwise/startwise/pkg/utils"
)

type queryRequest struct {
	Question string       `json:"question"`
	Options  queryOptions `json:"options"`
}

type queryOptions struct {
	MaxResults     int     `json:"maxResults"`
	Threshold      float64 `json:"threshold"`
	CategoryFilter string  `json:"categoryFilter"`
	SourceFilter   string  `json:"sourceFilter"`
}

type queryResponse struct {
	*search.Answer
	RequestID    string `json:"request_id"`
	ProcessingMS int64  `json:"processing_ms"`
	Cached       bool   `json:"cached,omitempty"`
}

func (o queryOptions) toSearchQuery(question string) *models.SearchQuery {
	return &models.SearchQuery{
		Query:          question,
		MaxResults:     o.MaxResults,
		Threshold:      o.Threshold,
		CategoryFilter: o.CategoryFilter,
		SourceFilter:   o.SourceFilter,
	}
}

// cacheKey ignores request identity so identical questions share an entry.
func (r queryRequest) cacheKey() string {
	var b strings.Builder
	_ = json.NewEncoder(&b).Encode(r)
	return b.String()
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		s.respondError(w, http.StatusBadRequest, "Question is required")
		return
	}

	requestID := uuid.NewString()
	s.logger.Debug("query request",
		zap.String("request_id", requestID),
		zap.String("question", utils.Truncate(req.Question, 200)))

	if cached, ok := s.answers.Get(req.cacheKey()); ok {
		answer := cached.(*search.Answer)
		s.respondJSON(w, http.StatusOK, &queryResponse{
			Answer:    answer,
			RequestID: requestID,
			Cached:    true,
		})
		return
	}

	answer := s.pipeline.Ask(r.Context(), req.Options.toSearchQuery(req.Question))
	s.answers.SetDefault(req.cacheKey(), answer)

	s.respondJSON(w, http.StatusOK, &queryResponse{
		Answer:       answer,
		RequestID:    requestID,
		ProcessingMS: answer.Elapsed.Milliseconds(),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		s.respondError(w, http.StatusBadRequest, "Question is required")
		return
	}

	result := s.engine.Search(req.Options.toSearchQuery(req.Question))
	s.respondJSON(w, http.StatusOK, result)
}

type discoverRequest struct {
	Idea       string `json:"idea"`
	MaxResults int    `json:"maxResults"`
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Idea) == "" {
		s.respondError(w, http.StatusBadRequest, "Idea is required")
		return
	}

	analysis := s.pipeline.AnalyzeIdea(r.Context(), &models.IdeaQuery{
		Idea:       req.Idea,
		MaxResults: req.MaxResults,
	})
	s.respondJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": s.store.Categories(),
		"total":      s.store.Len(),
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if err := s.store.Load(); err != nil {
		s.logger.Error("corpus reload failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.answers.Flush()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "reloaded",
		"records":    s.store.Len(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": s.store.Len(),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
