package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ShutdownFunc releases a component once the HTTP server has stopped.
type ShutdownFunc func(ctx context.Context) error

// Server runs an echo instance until its context is cancelled, then drains
// in-flight requests and closes registered components.
type Server struct {
	e               *echo.Echo
	addr            string
	shutdownTimeout time.Duration
	logger          zerolog.Logger

	mu            sync.Mutex
	shutdownFuncs []ShutdownFunc
}

func NewServer(e *echo.Echo, addr string, shutdownTimeout time.Duration, logger zerolog.Logger) *Server {
	e.Server.ReadHeaderTimeout = 10 * time.Second
	e.Server.ReadTimeout = 30 * time.Second
	e.Server.WriteTimeout = 30 * time.Second
	return &Server{e: e, addr: addr, shutdownTimeout: shutdownTimeout, logger: logger}
}

// OnShutdown registers fn to run after the HTTP server stops. Functions run
// in reverse registration order.
func (s *Server) OnShutdown(name string, fn ShutdownFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdownFuncs = append(s.shutdownFuncs, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			s.logger.Error().Err(err).Str("component", name).Msg("component shutdown failed")
			return err
		}
		s.logger.Info().Str("component", name).Msg("component stopped")
		return nil
	})
}

// Run serves until ctx is done or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("server starting")
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
		return s.shutdown()
	}
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.e.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("http server shutdown failed")
	}
	s.logger.Info().Msg("http server stopped")

	s.mu.Lock()
	funcs := s.shutdownFuncs
	s.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		if err := funcs[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
