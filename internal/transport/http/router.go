// Package httptransport assembles the public HTTP surface.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"sdnscreen/internal/platform/metrics"
	"sdnscreen/internal/screening/handler"
	"sdnscreen/pkg/platform/httputil"
	"sdnscreen/pkg/platform/middleware/metadata"
	"sdnscreen/pkg/platform/middleware/requesttime"
)

// NewRouter mounts the sanctions endpoints plus health and metrics.
func NewRouter(svc handler.Service, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(metadata.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))

	handler.New(svc, logger).Register(r)
	return r
}
