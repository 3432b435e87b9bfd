package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"shaimind/src/session"
)

// Server renders the chat UI and drives the per-message pipeline
type Server struct {
	manager    *session.Manager
	logger     *zap.Logger
	httpServer *http.Server
}

func New(listen string, manager *session.Manager, logger *zap.Logger) *Server {
	s := &Server{
		manager: manager,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/chat", s.handleChat)
	r.Post("/persona", s.handleSwitchPersona)
	r.Get("/healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:        listen,
		Handler:     r,
		ReadTimeout: 30 * time.Second,
		// No write timeout: the LLM call blocks for its full duration
	}

	return s
}

// Handler exposes the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving and blocks until the listener closes
func (s *Server) Start() error {
	s.logger.Info("listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
