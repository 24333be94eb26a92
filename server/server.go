package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/zenlead/studio/config"
	"github.com/zenlead/studio/core/logger"
	"github.com/zenlead/studio/core/threading"
	"github.com/zenlead/studio/settings"
)

// Server runs the HTTP API and shuts it down cleanly when the given
// context is cancelled.
type Server struct {
	http   *http.Server
	config config.ServerConfig
}

func New(cfg config.ServerConfig, service *settings.Service) *Server {
	return &Server{
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: NewRouter(service),
		},
		config: cfg,
	}
}

// Run serves requests until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	errs := make(chan error, 1)
	threading.GoSafe(func() {
		logger.Info("HTTP server listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	})

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.config.ShutdownTimeout)*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server")
	return s.http.Shutdown(shutdownCtx)
}
