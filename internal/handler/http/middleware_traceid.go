package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace id, attaches a trace-scoped
// logger to the request context, and echoes the id in the response headers.
// An incoming X-Trace-ID is honoured so callers can correlate across hops.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		requestLogger := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := requestLogger.WithContext(r.Context())

		w.Header().Set(traceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
