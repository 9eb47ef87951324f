// Package api exposes the profiling engine over HTTP. The surface is thin:
// every data problem is already inside the report the service returns, so the
// handlers only translate caller errors into status codes.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"csvprof/domain/table"
	"csvprof/internal"
	"csvprof/ports"
)

// Server represents the HTTP API for the profiling engine
type Server struct {
	router    *chi.Mux
	processor ports.ProcessorPort
	defaults  table.ProcessOptions
	log       *internal.Logger
}

// NewServer creates a server around a processor. The defaults fill in any
// option a request leaves unset.
func NewServer(processor ports.ProcessorPort, defaults table.ProcessOptions, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:    chi.NewRouter(),
		processor: processor,
		defaults:  defaults,
		log:       logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/process", s.handleProcess)
		r.Get("/summary/{handle}", s.handleSummary)
		r.Get("/report/{handle}", s.handleReport)
		r.Get("/report/{handle}/html", s.handleReportHTML)
	})
}

// Handler returns the router for serving and for httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server on the given port
func (s *Server) Start(port string) error {
	addr := ":" + port
	s.log.Info("API server listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
