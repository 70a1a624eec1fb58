package health

import (
	"net/http"

	"github.com/you-humble/pc-builder/platform/logger"
)

type CatalogProbe interface {
	Loaded() bool
}

// Handler answers SERVING once the catalog snapshot is available.
func Handler(probe CatalogProbe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !probe.Loaded() {
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte("NOT_SERVING")); err != nil {
				logger.Error(r.Context(), "health check", logger.ErrorF(err))
			}
			return
		}

		if _, err := w.Write([]byte("SERVING")); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
