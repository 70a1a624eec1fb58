package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/pc-builder/platform/logger"
)

// RequestID copies chi's request id into the logger context.
// It must run after chimw.RequestID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			w.Header().Set(chimw.RequestIDHeader, id)
			r = r.WithContext(logger.WithRequestID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
