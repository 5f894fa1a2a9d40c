package http

import (
	"net/http"
	"time"

	"github.com/mkarpenko/credvault/internal/logger"
)

// withLogging emits one access-log entry per request after the handler chain
// has finished, using the trace-scoped logger attached by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(started)).
			Msg("request served")
	})
}
