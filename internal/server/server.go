// Package server provides the HTTP API for StartWise.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/config"
	"github.com/startwise/startwise/internal/corpus"
	"github.com/startwise/startwise/internal/search"
)

// Server is the HTTP server for the StartWise API.
type Server struct {
	pipeline *search.Pipeline
	engine   *search.Engine
	store    *corpus.Store
	config   *config.ServerConfig
	logger   *zap.Logger
	answers  *cache.Cache
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	pipeline *search.Pipeline,
	engine *search.Engine,
	store *corpus.Store,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	return &Server{
		pipeline: pipeline,
		engine:   engine,
		store:    store,
		config:   cfg,
		logger:   logger,
		answers:  cache.New(ttl, 2*ttl),
	}
}

// Router builds the chi router with all routes and middleware. Exposed
// separately from Start for handler tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/query", s.handleQuery)
	r.Post("/api/v1/search", s.handleSearch)
	r.Post("/api/v1/discover", s.handleDiscover)
	r.Get("/api/v1/categories", s.handleCategories)
	r.Post("/api/v1/reload", s.handleReload)
	r.Get("/health", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
