// Package server provides the HTTP API for Kuraberu.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/quotely/kuraberu/internal/catalog"
	"github.com/quotely/kuraberu/internal/config"
	"github.com/quotely/kuraberu/internal/finder"
	"go.uber.org/zap"
)

// Server is the HTTP server for the Kuraberu API.
type Server struct {
	engine  *finder.Engine
	catalog *catalog.Catalog
	index   *catalog.Index
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a server with the given dependencies. The engine must
// be the same instance used by any other adapter so the scoring formulas
// exist in one place.
func NewServer(
	engine *finder.Engine,
	cat *catalog.Catalog,
	idx *catalog.Index,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		engine:  engine,
		catalog: cat,
		index:   idx,
		config:  cfg,
		logger:  logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/compare", s.handleCompare)
	r.Get("/api/v1/products", s.handleListProducts)
	r.Get("/api/v1/products/{id}", s.handleGetProduct)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
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
