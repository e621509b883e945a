// Package server exposes availability assessments over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/domainscout/domainscout/internal/config"
	"github.com/domainscout/domainscout/internal/server/handlers"
	servermw "github.com/domainscout/domainscout/internal/server/middleware"
)

// Server represents the HTTP server.
type Server struct {
	router *chi.Mux
	server *http.Server
	cfg    config.ServerConfig
	logger *zap.Logger
}

// Deps wires the components the routes need.
type Deps struct {
	Engine   handlers.Assessor
	Version  handlers.VersionResponse
	Checkers map[string]handlers.HealthChecker
	Logger   *zap.Logger
}

// New creates a new HTTP server instance.
func New(cfg config.ServerConfig, deps Deps) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(servermw.RequestID)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handlers.RespondError(w, req, http.StatusNotFound, "the requested resource was not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		handlers.RespondError(w, req, http.StatusMethodNotAllowed, "the requested method is not allowed for this resource")
	})

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		router: r,
		cfg:    cfg,
		logger: logger,
	}

	s.registerRoutes(deps)
	return s
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  orDuration(s.cfg.ReadTimeout, 10*time.Second),
		WriteTimeout: orDuration(s.cfg.WriteTimeout, 120*time.Second),
		IdleTimeout:  orDuration(s.cfg.IdleTimeout, 60*time.Second),
	}

	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// Handler exposes the underlying router for testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

func orDuration(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}
