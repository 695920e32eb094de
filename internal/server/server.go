package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fadedpez/martingale/internal/config"
	"github.com/fadedpez/martingale/internal/logging"
	"github.com/fadedpez/martingale/pkg/repositories/results"
	"github.com/fadedpez/martingale/pkg/services/montecarlo"
)

// Server exposes the simulation engine over HTTP. It is the
// presentation collaborator: it only shuttles structured records
// between JSON and the engine.
type Server struct {
	cfg    *config.Config
	logger *logging.Logger
	repo   results.Repository
	orch   *montecarlo.Orchestrator
	router chi.Router
}

// New creates a server around a results repository
func New(cfg *config.Config, logger *logging.Logger, repo results.Repository) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
		orch:   montecarlo.NewOrchestrator(0),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/trial", s.handleTrial)
	r.Post("/api/montecarlo", s.handleMonteCarlo)
	r.Get("/api/runs", s.handleListRuns)
	r.Get("/api/runs/{id}", s.handleGetRun)

	return r
}

// Handler returns the HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts serving on the configured address and blocks
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.logger.Info("Simulation API listening on %s", s.cfg.Addr)
	return srv.ListenAndServe()
}
