package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID correlates a request with its log entries. A client-supplied
// X-Trace-ID is reused so the id stays stable across services; otherwise a
// fresh uuid is minted. The id is stamped on the response and on the
// request-scoped logger that downstream handlers pull from the context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := requestTraceID(r)

		scoped := h.logger.GetChildLogger()
		scoped.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(scoped.WithContext(r.Context())))
	})
}

// requestTraceID returns the trace id carried by the request, or a new one.
func requestTraceID(r *http.Request) string {
	if traceID := r.Header.Get(traceIDHeader); traceID != "" {
		return traceID
	}
	return uuid.NewString()
}
