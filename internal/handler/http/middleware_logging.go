package http

import (
	"net/http"
	"time"

	"github.com/ymatsuda/go-api-sample/internal/logger"
)

// withLogging emits one structured log entry per request with the method,
// path, duration, response status and body size.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Dur("duration", time.Since(start)).
			Int("status", rw.status).
			Int("size", rw.size).
			Msg("request handled")
	})
}
