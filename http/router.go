package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"fd-calculator/logger"
	"fd-calculator/security"
)

const requestIDHeader = "X-Request-ID"

// NewRouter wires the calculator routes. Every route is rate limited;
// all but /health also pass through AuthMiddleware.
func NewRouter(handler *CalculatorHandler, limiter *RateLimiter, validator *security.TokenValidator) http.Handler {
	protected := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, AuthMiddleware(validator, h))
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", RateLimitMiddleware(limiter, http.HandlerFunc(handler.Health)))

	mux.Handle("POST /calculate/standalone", protected(handler.CalculateStandalone))
	mux.Handle("POST /calculate/product-based", protected(handler.CalculateWithProduct))
	mux.Handle("POST /compare", protected(handler.CompareScenarios))
	mux.Handle("GET /calculations/recent", protected(handler.RecentCalculations))
	mux.Handle("DELETE /cache/products/{id}", protected(handler.EvictProduct))
	mux.Handle("DELETE /cache/customers/{id}", protected(handler.EvictCustomer))

	return RequestLogMiddleware(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// RequestLogMiddleware tags each request with an id (kept from the caller
// when present) and logs its outcome.
func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logger.L.Info("Request handled",
			"requestID", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
