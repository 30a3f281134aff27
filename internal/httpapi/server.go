// Package httpapi exposes the validation engine over HTTP for wizard
// frontends: per-step gating, full-record validation and regulatory
// export.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tate-it/energy-toolbox-sub003/internal/config"
	"github.com/tate-it/energy-toolbox-sub003/internal/engine"
)

// Server wraps the gin engine and the http.Server lifecycle.
type Server struct {
	cfg    config.ServerConfig
	srv    *http.Server
	logger *zap.Logger
}

// NewServer wires the routes over a validation engine.
func NewServer(cfg config.ServerConfig, e *engine.Engine, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
	)

	SetupRouter(router, NewHandlers(e, logger))

	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:         cfg.ListenAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout.Std(),
			WriteTimeout: cfg.WriteTimeout.Std(),
		},
		logger: logger,
	}
}

// SetupRouter registers the API routes on a gin engine.
func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	api.GET("/health", h.Health)
	api.GET("/fields", h.Fields)
	api.GET("/steps", h.Steps)

	api.POST("/validate", h.Validate)
	api.POST("/steps/:id/can-advance", h.CanAdvance)
	api.POST("/export", h.Export)
}

// Run serves until the context is canceled, then drains within the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout.Std())
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
