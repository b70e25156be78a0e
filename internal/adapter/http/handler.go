package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"community-ads/internal/core/domain"
	"community-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the use case, a logger,
// the request validator and the routes registered on a chi.Router.
type Handler struct {
	svc           port.CampaignUseCase
	logger        *slog.Logger
	validate      *validator.Validate
	maxImageBytes int
	router        chi.Router
}

// NewHandler creates a handler with all routes configured. maxImageBytes
// <= 0 selects domain.DefaultMaxImageBytes.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, maxImageBytes int) *Handler {
	if maxImageBytes <= 0 {
		maxImageBytes = domain.DefaultMaxImageBytes
	}
	h := &Handler{
		svc:           svc,
		logger:        logger,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		maxImageBytes: maxImageBytes,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/communities", h.handleSearchCommunities)
		r.Get("/stock-images", h.handleStockImages)
		r.Get("/location", h.handleLocation)

		r.Post("/drafts", h.handleCreateDraft)
		r.Route("/drafts/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetDraft)
			r.Put("/format", h.handleSetFormat)
			r.Put("/creative", h.handleSetCreative)
			r.Post("/image", h.handleUploadImage)
			r.Put("/image/stock", h.handlePickStockImage)
			r.Delete("/image", h.handleClearImage)
			r.Post("/communities/{cid}/toggle", h.handleToggleCommunity)
			r.Post("/communities/bulk", h.handleBulkSelect)
			r.Put("/schedule/preset", h.handleSchedulePreset)
			r.Post("/schedule/pick", h.handleSchedulePick)
			r.Put("/schedule", h.handleSetSchedule)
			r.Put("/launch", h.handleSetLaunch)
			r.Post("/next", h.handleNext)
			r.Post("/back", h.handleBack)
			r.Get("/review", h.handleReview)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
