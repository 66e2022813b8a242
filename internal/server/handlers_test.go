package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agbru/numcalc/internal/sequence"
)

// newTestServer builds a server wired to the default calculator registry.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(":0", sequence.NewDefaultFactory(), newTestLogger(), "test")
}

// decodeJSON unmarshals a recorded response body into v.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
}

func TestServer_handleFib(t *testing.T) {
	t.Parallel()

	t.Run("Valid request returns the term", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest("GET", "/api/v1/fib?n=10", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleFib(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
		}

		var resp fibResponse
		decodeJSON(t, rec, &resp)
		if resp.Value != "55" {
			t.Errorf("value = %q, want %q", resp.Value, "55")
		}
		if resp.N != 10 {
			t.Errorf("n = %d, want 10", resp.N)
		}
		if resp.Algorithm != "fast-doubling" {
			t.Errorf("algorithm = %q, want default %q", resp.Algorithm, "fast-doubling")
		}
		if resp.Digits != 2 {
			t.Errorf("digits = %d, want 2", resp.Digits)
		}
	})

	t.Run("Explicit algorithm is honored", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest("GET", "/api/v1/fib?n=20&algo=iterative", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleFib(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var resp fibResponse
		decodeJSON(t, rec, &resp)
		if resp.Value != "6765" {
			t.Errorf("value = %q, want %q", resp.Value, "6765")
		}
		if resp.Algorithm != "iterative" {
			t.Errorf("algorithm = %q, want %q", resp.Algorithm, "iterative")
		}
	})

	t.Run("Bad requests return 400", func(t *testing.T) {
		s := newTestServer(t)
		maxExceeded := fmt.Sprintf("/api/v1/fib?n=%d", s.security.MaxNValue+1)

		tests := []struct {
			name   string
			target string
		}{
			{"Missing n", "/api/v1/fib"},
			{"Non-numeric n", "/api/v1/fib?n=abc"},
			{"Negative n", "/api/v1/fib?n=-5"},
			{"N above the configured maximum", maxExceeded},
			{"Unknown algorithm", "/api/v1/fib?n=10&algo=matrix"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := httptest.NewRequest("GET", tt.target, http.NoBody)
				rec := httptest.NewRecorder()

				s.handleFib(rec, req)

				if rec.Code != http.StatusBadRequest {
					t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
				}
				var resp errorResponse
				decodeJSON(t, rec, &resp)
				if resp.Error == "" {
					t.Error("error response should carry a message")
				}
			})
		}
	})

	t.Run("Non-GET returns 405", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest("POST", "/api/v1/fib?n=10", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleFib(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
		}
	})
}

func TestServer_handleSqrt(t *testing.T) {
	t.Parallel()

	t.Run("Valid request approximates the root", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest("GET", "/api/v1/sqrt?a=16", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSqrt(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
		}

		var resp sqrtResponse
		decodeJSON(t, rec, &resp)
		if resp.A != 16 {
			t.Errorf("a = %g, want 16", resp.A)
		}
		if math.Abs(resp.Estimate*resp.Estimate-16) > 0.01 {
			t.Errorf("estimate %g does not satisfy the default tolerance", resp.Estimate)
		}
		if resp.Iterations <= 0 {
			t.Errorf("iterations = %d, want > 0", resp.Iterations)
		}
	})

	t.Run("Custom solver parameters are forwarded", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest("GET", "/api/v1/sqrt?a=2&init=1.5&eps=0.0001", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSqrt(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var resp sqrtResponse
		decodeJSON(t, rec, &resp)
		if math.Abs(resp.Estimate*resp.Estimate-2) > 0.0001 {
			t.Errorf("estimate %g does not satisfy the requested tolerance", resp.Estimate)
		}
	})

	t.Run("Negative argument returns 400", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest("GET", "/api/v1/sqrt?a=-4", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSqrt(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		var resp errorResponse
		decodeJSON(t, rec, &resp)
		if !strings.Contains(resp.Error, "non-negative") {
			t.Errorf("error = %q, want a non-negative argument message", resp.Error)
		}
	})

	t.Run("Malformed parameters return 400", func(t *testing.T) {
		s := newTestServer(t)

		tests := []struct {
			name   string
			target string
		}{
			{"Missing a", "/api/v1/sqrt"},
			{"Non-numeric a", "/api/v1/sqrt?a=abc"},
			{"Non-numeric init", "/api/v1/sqrt?a=16&init=abc"},
			{"Non-numeric eps", "/api/v1/sqrt?a=16&eps=abc"},
			{"Non-integer max-iter", "/api/v1/sqrt?a=16&max-iter=1.5"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := httptest.NewRequest("GET", tt.target, http.NoBody)
				rec := httptest.NewRecorder()

				s.handleSqrt(rec, req)

				if rec.Code != http.StatusBadRequest {
					t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
				}
			})
		}
	})

	t.Run("Iteration cap exhaustion returns 422", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest("GET", "/api/v1/sqrt?a=16&max-iter=1", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSqrt(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
		}
	})

	t.Run("Non-GET returns 405", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest("DELETE", "/api/v1/sqrt?a=16", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSqrt(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
		}
	})
}

func TestServer_handleHealth(t *testing.T) {
	t.Parallel()

	s := New(":0", sequence.NewDefaultFactory(), newTestLogger(), "1.2.3")
	req := httptest.NewRequest("GET", "/healthz", http.NoBody)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp healthResponse
	decodeJSON(t, rec, &resp)
	if resp.Status != "ok" {
		t.Errorf("status = %q, want %q", resp.Status, "ok")
	}
	if resp.Version != "1.2.3" {
		t.Errorf("version = %q, want %q", resp.Version, "1.2.3")
	}
}

// TestServer_routes exercises the full mux, middleware included.
func TestServer_routes(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	t.Run("Fib route carries security headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/fib?n=7", http.NoBody)
		rec := httptest.NewRecorder()

		s.httpServer.Handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
			t.Errorf("X-Content-Type-Options = %q, want %q", got, "nosniff")
		}

		var resp fibResponse
		decodeJSON(t, rec, &resp)
		if resp.Value != "13" {
			t.Errorf("value = %q, want %q", resp.Value, "13")
		}
	})

	t.Run("Requests are counted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/sqrt?a=25", http.NoBody)
		rec := httptest.NewRecorder()

		s.httpServer.Handler.ServeHTTP(rec, req)

		metricsReq := httptest.NewRequest("GET", "/metrics", http.NoBody)
		metricsRec := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(metricsRec, metricsReq)

		if !strings.Contains(metricsRec.Body.String(), `path="/api/v1/sqrt"`) {
			t.Error("metrics output should count the sqrt request by path")
		}
	})
}
