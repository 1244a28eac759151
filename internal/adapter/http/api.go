package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"charity/internal/core/domain"
	"charity/internal/core/port"
)

type campaignJSON struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Goal        decimal.Decimal `json:"goal_amount"`
	Raised      decimal.Decimal `json:"raised_amount"`
	Currency    string          `json:"currency"`
	Progress    float64         `json:"progress_percentage"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newCampaignJSON(c domain.Campaign) campaignJSON {
	return campaignJSON{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Goal:        c.GoalAmount,
		Raised:      c.RaisedAmount,
		Currency:    c.Currency,
		Progress:    c.ProgressPercentage(),
		ImageURL:    c.ImageURL(),
		CreatedAt:   c.CreatedAt,
	}
}

type statsJSON struct {
	Campaigns       int64           `json:"campaigns"`
	ActiveCampaigns int64           `json:"active_campaigns"`
	TotalGoal       decimal.Decimal `json:"total_goal"`
	TotalRaised     decimal.Decimal `json:"total_raised"`
	Donations       int64           `json:"donations"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func (h *Handler) handleAPICampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	out := make([]campaignJSON, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, newCampaignJSON(c))
	}
	h.writeJSON(w, r, http.StatusOK, out)
}

func (h *Handler) handleAPICampaign(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, r, http.StatusBadRequest, errorJSON{Error: "invalid campaign id"})
		return
	}
	camp, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newCampaignJSON(*camp))
}

// handleStatsOverview returns totals across all campaigns. Internal errors
// produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, statsJSON{
		Campaigns:       stats.Campaigns,
		ActiveCampaigns: stats.ActiveCampaigns,
		TotalGoal:       stats.TotalGoal,
		TotalRaised:     stats.TotalRaised,
		Donations:       stats.Donations,
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) apiError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.writeJSON(w, r, http.StatusNotFound, errorJSON{Error: "campaign not found"})
		return
	}
	h.requestLogger(r).Error("api error", slog.String("path", r.URL.Path), slog.Any("error", err))
	h.writeJSON(w, r, http.StatusInternalServerError, errorJSON{Error: "internal error"})
}
