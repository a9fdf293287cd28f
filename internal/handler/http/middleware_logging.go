package http

import (
	"net/http"
	"time"

	"github.com/universal-workshop/syncagent/internal/logger"
)

// withLogging emits one access line per request through the trace-bound
// logger, keeping API activity correlated with the queue events it caused.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("bytes", lw.size).
			Dur("duration", time.Since(start)).
			Str("func", "Handler.withLogging").
			Msg("api request served")
	})
}
