package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/OpenByteDev/build-target/pkg/errors"
)

type contextKey string

const (
	contextKeyRequestID contextKey = "requestID"

	// HeaderRequestID is echoed back, or generated when the client sent none.
	HeaderRequestID = "X-Request-Id"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withMiddleware wraps an API handler with request ids, rate limiting,
// version negotiation, panic recovery and metrics.
func (s *Server) withMiddleware(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, requestID)
		r = r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if p := recover(); p != nil {
				slog.Error("handler panicked", "path", path, "panic", p, "requestId", requestID)
				WriteError(rec, r, http.StatusInternalServerError, errors.ErrCodeInternal,
					"internal server error", true, nil)
			}
			httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
			httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		}()

		if !s.limiter.Allow() {
			rateLimitRejects.Inc()
			rec.Header().Set("Retry-After", "1")
			WriteError(rec, r, http.StatusTooManyRequests, errors.ErrCodeRateLimitExceeded,
				"rate limit exceeded", true, nil)
			return
		}

		rec.Header().Set(HeaderAPIVersion, negotiateAPIVersion(r))
		if s.config.CacheMaxAge > 0 {
			rec.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(s.config.CacheMaxAge))
		}

		slog.Debug("handling request",
			"path", r.URL.Path,
			"method", r.Method,
			"requestId", requestID,
		)
		next(rec, r)
	}
}
