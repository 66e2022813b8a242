// Package server exposes the calculators over an HTTP JSON API with
// Prometheus metrics and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/sequence"
)

const (
	// ReadHeaderTimeout bounds the time spent reading request headers.
	ReadHeaderTimeout = 5 * time.Second
	// ShutdownTimeout bounds the graceful shutdown drain.
	ShutdownTimeout = 10 * time.Second
	// CalculationTimeout bounds a single API calculation.
	CalculationTimeout = 30 * time.Second
)

// Server is the HTTP API front end.
type Server struct {
	httpServer *http.Server
	factory    sequence.CalculatorFactory
	metrics    *Metrics
	logger     logging.Logger
	security   SecurityConfig
	version    string
}

// New creates a Server listening on addr with the default security
// configuration.
//
// Parameters:
//   - addr: The listen address (e.g. ":8080").
//   - factory: The calculator factory backing the sequence endpoint.
//   - logger: The structured logger for request and lifecycle events.
//   - version: The application version reported by the health endpoint.
//
// Returns:
//   - *Server: The configured server, ready to Run.
func New(addr string, factory sequence.CalculatorFactory, logger logging.Logger, version string) *Server {
	s := &Server{
		factory:  factory,
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
		version:  version,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/fib", s.secure(s.handleFib))
	mux.HandleFunc("/api/v1/sqrt", s.secure(s.handleSqrt))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/metrics", s.handleMetrics)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	return s
}

// secure wraps an API handler with the security and metrics middlewares.
func (s *Server) secure(next http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(next))
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware tracks in-flight requests, request counts, and latency.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.metrics.ObserveRequest(r.URL.Path, strconv.Itoa(rec.status), time.Since(start).Seconds())
	}
}

// Run starts the server and blocks until ctx is canceled or the listener
// fails. On cancellation the server drains in-flight requests for up to
// ShutdownTimeout before returning.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("graceful shutdown failed", err)
		return err
	}
	return nil
}
