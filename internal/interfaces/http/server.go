package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/turtacn/opportunity-canvas/internal/config"
	"github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/opportunity-canvas/pkg/errors"
)

// Server runs the HTTP listener and manages graceful shutdown.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
	shutdown   config.ServerConfig
}

// NewServer wraps the handler in an http.Server configured from cfg.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger logging.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger:   logger.Named("server"),
		shutdown: cfg,
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start blocks serving requests until the listener closes.  A clean
// shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("http server listening", logging.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return apperrors.Wrap(err, apperrors.CodeUnavailable, "http server failed")
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdown.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "http server shutdown")
	}
	return nil
}
