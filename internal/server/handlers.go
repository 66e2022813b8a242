package server

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/instrument"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/progress"
	"github.com/agbru/numcalc/internal/sequence"
	"github.com/agbru/numcalc/internal/solver"
)

// fibResponse is the JSON body of a successful sequence calculation.
type fibResponse struct {
	N          uint64  `json:"n"`
	Algorithm  string  `json:"algorithm"`
	Value      string  `json:"value"`
	Digits     int     `json:"digits"`
	DurationMs float64 `json:"duration_ms"`
}

// sqrtResponse is the JSON body of a successful root approximation.
type sqrtResponse struct {
	A          float64 `json:"a"`
	Estimate   float64 `json:"estimate"`
	Iterations int     `json:"iterations"`
	DurationMs float64 `json:"duration_ms"`
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse is the JSON body of the health endpoint.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// writeJSON serializes v with the proper content type.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError serializes an error response.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// handleFib serves GET /api/v1/fib?n=<index>&algo=<name>.
func (s *Server) handleFib(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	n, err := strconv.ParseUint(r.URL.Query().Get("n"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "parameter n must be a non-negative integer")
		return
	}
	if n > s.security.MaxNValue {
		s.writeError(w, http.StatusBadRequest, "parameter n exceeds the allowed maximum")
		return
	}

	algo := r.URL.Query().Get("algo")
	if algo == "" {
		algo = "fast-doubling"
	}
	calc, ok := s.factory.Get(algo)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "unknown algorithm: "+algo)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), CalculationTimeout)
	defer cancel()

	timed, err := instrument.MeasureCtx(ctx, func(ctx context.Context) (*big.Int, error) {
		return calc.Calculate(ctx, progress.NoOpCallback, n, sequence.Options{})
	})
	if err != nil {
		s.metrics.RecordCalculation(calc.Name(), "error")
		s.logger.Error("fib calculation failed", err,
			logging.Uint64("n", n), logging.String("algorithm", calc.Name()))

		var validationErr apperrors.ValidationError
		switch {
		case errors.As(err, &validationErr):
			s.writeError(w, http.StatusBadRequest, validationErr.Error())
		case apperrors.IsContextError(err):
			s.writeError(w, http.StatusGatewayTimeout, "calculation timed out")
		default:
			s.writeError(w, http.StatusInternalServerError, "calculation failed")
		}
		return
	}

	s.metrics.RecordCalculation(calc.Name(), "success")
	value := timed.Value.String()
	writeJSON(w, http.StatusOK, fibResponse{
		N:          n,
		Algorithm:  calc.Name(),
		Value:      value,
		Digits:     len(value),
		DurationMs: float64(timed.Elapsed) / float64(time.Millisecond),
	})
}

// handleSqrt serves GET /api/v1/sqrt?a=<value> with optional init, eps, and
// max-iter parameters.
func (s *Server) handleSqrt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	a, err := strconv.ParseFloat(q.Get("a"), 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "parameter a must be a number")
		return
	}

	opts := solver.Options{}
	if raw := q.Get("init"); raw != "" {
		if opts.Init, err = strconv.ParseFloat(raw, 64); err != nil {
			s.writeError(w, http.StatusBadRequest, "parameter init must be a number")
			return
		}
	}
	if raw := q.Get("eps"); raw != "" {
		if opts.Epsilon, err = strconv.ParseFloat(raw, 64); err != nil {
			s.writeError(w, http.StatusBadRequest, "parameter eps must be a number")
			return
		}
	}
	if raw := q.Get("max-iter"); raw != "" {
		if opts.MaxIterations, err = strconv.Atoi(raw); err != nil {
			s.writeError(w, http.StatusBadRequest, "parameter max-iter must be an integer")
			return
		}
	}

	timed, err := instrument.Measure(func() (solver.Result, error) {
		return solver.SqrtNewton(a, opts)
	})
	if err != nil {
		s.metrics.RecordCalculation("newton-sqrt", "error")
		s.logger.Error("sqrt calculation failed", err, logging.Float64("a", a))

		var validationErr apperrors.ValidationError
		var convergenceErr apperrors.ConvergenceError
		switch {
		case errors.As(err, &validationErr):
			s.writeError(w, http.StatusBadRequest, validationErr.Error())
		case errors.As(err, &convergenceErr):
			s.writeError(w, http.StatusUnprocessableEntity, convergenceErr.Error())
		default:
			s.writeError(w, http.StatusInternalServerError, "calculation failed")
		}
		return
	}

	s.metrics.RecordCalculation("newton-sqrt", "success")
	writeJSON(w, http.StatusOK, sqrtResponse{
		A:          a,
		Estimate:   timed.Value.Estimate,
		Iterations: timed.Value.Iterations,
		DurationMs: float64(timed.Elapsed) / float64(time.Millisecond),
	})
}

// handleHealth serves GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.version})
}

// handleMetrics serves GET /metrics in Prometheus exposition format.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}
