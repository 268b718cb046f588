package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sdnscreen/internal/screening"
	"sdnscreen/internal/screening/service"
	"sdnscreen/internal/source"
	"sdnscreen/pkg/platform/httputil"
	"sdnscreen/pkg/requestcontext"
)

// Service defines the interface for screening operations.
type Service interface {
	Search(ctx context.Context, q screening.Query) (*service.Result, error)
	Info(ctx context.Context) (source.PublishInfo, error)
}

// Handler wires sanctions endpoints to the screening service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a sanctions handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts sanctions endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/sanctions/search", h.HandleSearch)
	r.Get("/sanctions/info", h.HandleInfo)
}

// HandleSearch handles POST /sanctions/search requests.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := requestcontext.Now(ctx)

	req, ok := httputil.DecodeAndPrepare[SearchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Search(ctx, req.Query())
	if err != nil {
		h.logger.ErrorContext(ctx, "sanctions search failed",
			"request_id", requestID,
			"client_ip", requestcontext.ClientIP(ctx),
			"user_agent", requestcontext.UserAgent(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "sanctions search served",
		"request_id", requestID,
		"search_id", result.SearchID,
		"client_ip", requestcontext.ClientIP(ctx),
		"user_agent", requestcontext.UserAgent(ctx),
		"matches", len(result.Matches),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleInfo handles GET /sanctions/info requests.
func (h *Handler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info, err := h.service.Info(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "publish information unavailable",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPublishInfo(info))
}
