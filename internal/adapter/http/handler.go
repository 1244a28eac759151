package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/schema"

	"charity/internal/config/configs"
	"charity/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It serves the public HTML pages, the donation form, the gateway callback
// and webhook, and a small JSON API. Routes are registered on a chi.Router.
type Handler struct {
	svc     port.DonationUseCase
	logger  *slog.Logger
	router  chi.Router
	pages   *pages
	flash   *flashCodec
	decoder *schema.Decoder
	site    configs.Site
}

// NewHandler creates a handler with all routes configured. Static files are
// served from staticDir under /static/.
func NewHandler(svc port.DonationUseCase, logger *slog.Logger, site configs.Site, staticDir string) *Handler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	h := &Handler{
		svc:     svc,
		logger:  logger,
		pages:   mustParsePages(),
		flash:   newFlashCodec(site.SecretKey),
		decoder: decoder,
		site:    site,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.NotFound(h.handleNotFound)

	r.Get("/", h.handleIndex)
	r.Get("/about", h.handleAbout)
	r.Get("/contact", h.handleContact)
	r.Get("/campaigns", h.handleCampaigns)
	r.Get("/campaign/{id}", h.handleCampaign)
	r.Post("/process-donation", h.handleDonate)
	r.Get("/paystack/callback", h.handleCallback)
	r.Post("/paystack/webhook", h.handleWebhook)
	r.Get("/donate/success/{reference}", h.handleDonateSuccess)
	r.Get("/donate/error", h.handleDonateError)
	r.Get("/test-paystack", h.handleTestPaystack)
	if staticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleAPICampaigns)
		r.Get("/campaigns/{id}", h.handleAPICampaign)
		r.Get("/stats/overview", h.handleStatsOverview)
		r.Get("/health", h.handleHealth)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requestLogger tags log lines with the chi request id.
func (h *Handler) requestLogger(r *http.Request) *slog.Logger {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return h.logger.With(slog.String("request_id", id))
	}
	return h.logger
}
