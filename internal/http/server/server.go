package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPServer struct {
	logs            *zap.SugaredLogger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string, requestTimeout, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		server: &http.Server{
			Addr:              net.JoinHostPort("", port),
			Handler:           handler,
			ReadHeaderTimeout: requestTimeout,
			ReadTimeout:       requestTimeout,
			WriteTimeout:      requestTimeout,
			IdleTimeout:       4 * requestTimeout,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (s *HTTPServer) Addr() string {
	return s.server.Addr
}

// Run starts listening in the background. The returned channel receives the
// error that stopped the server, http.ErrServerClosed after Shutdown.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)
	go func() {
		s.logs.Infow("http server listening", "addr", s.server.Addr)
		errChan <- s.server.ListenAndServe()
	}()
	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logs.Infow("http server shutting down", "timeout", s.shutdownTimeout.String())
	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
