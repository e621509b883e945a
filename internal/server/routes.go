package server

import (
	"github.com/domainscout/domainscout/internal/server/handlers"
)

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(deps Deps) {
	health := &handlers.Health{Version: deps.Version.Version, Checkers: deps.Checkers}
	version := &handlers.Version{Info: deps.Version}
	assess := &handlers.Assess{Engine: deps.Engine, Logger: s.logger}

	s.router.Get("/health", health.ServeHTTP)
	s.router.Get("/version", version.ServeHTTP)
	s.router.Post("/v1/assessments", assess.ServeHTTP)
}
