package httpadapter

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"charity/internal/core/domain"
	"charity/internal/core/money"
	"charity/internal/core/port"
)

const featuredCampaigns = 3

// presetAmounts are the NGN amounts offered as one-click choices on the
// donation form.
var presetAmounts = []int64{1_000, 5_000, 10_000, 25_000, 50_000}

type preset struct {
	Amount decimal.Decimal
	Fee    decimal.Decimal
}

type homePage struct {
	Stats     *port.StatsResp
	Campaigns []domain.Campaign
}

type campaignPage struct {
	Campaign   *domain.Campaign
	Presets    []preset
	Currencies []money.Currency
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := h.overview(r)
	if err != nil {
		h.serverError(w, r, "load home page", err)
		return
	}
	if len(data.Campaigns) > featuredCampaigns {
		data.Campaigns = data.Campaigns[:featuredCampaigns]
	}
	h.render(w, r, http.StatusOK, "index", "", data)
}

func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	data, err := h.overview(r)
	if err != nil {
		h.serverError(w, r, "load campaigns", err)
		return
	}
	h.render(w, r, http.StatusOK, "campaigns", "Campaigns", data)
}

func (h *Handler) handleCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.handleNotFound(w, r)
		return
	}

	camp, err := h.svc.GetCampaign(r.Context(), id)
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.handleNotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, "load campaign", err)
		return
	}

	presets := make([]preset, 0, len(presetAmounts))
	for _, a := range presetAmounts {
		amount := decimal.NewFromInt(a)
		presets = append(presets, preset{Amount: amount, Fee: money.EstimateFee(amount, "NGN")})
	}
	h.render(w, r, http.StatusOK, "campaign", camp.Title, campaignPage{
		Campaign:   camp,
		Presets:    presets,
		Currencies: money.SupportedCurrencies,
	})
}

func (h *Handler) overview(r *http.Request) (*homePage, error) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		return nil, err
	}
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		return nil, err
	}
	return &homePage{Stats: stats, Campaigns: campaigns}, nil
}
