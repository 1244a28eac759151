package httpadapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"charity/internal/core/money"
	"charity/internal/core/port"
)

// donationForm mirrors the fields of the donation form. Amount is either a
// preset value or "custom", in which case CustomAmount holds the number.
type donationForm struct {
	CampaignID   string `schema:"campaign_id"`
	Amount       string `schema:"amount"`
	CustomAmount string `schema:"custom_amount"`
	Currency     string `schema:"currency"`
	Email        string `schema:"email"`
}

// handleDonate processes the donation form. Validation failures go back to
// the campaign page with a flash; a successful initialization sends the
// donor to the gateway's payment page.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	var form donationForm
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/campaigns", levelError, "Invalid donation request")
		return
	}
	if err := h.decoder.Decode(&form, r.PostForm); err != nil {
		logger.Info("decode donation form", slog.Any("error", err))
		h.redirectWithFlash(w, r, "/campaigns", levelError, "Invalid donation request")
		return
	}

	campaignID, err := parseID(form.CampaignID)
	if err != nil {
		h.redirectWithFlash(w, r, "/campaigns", levelError, "Invalid campaign selected")
		return
	}
	back := fmt.Sprintf("/campaign/%d", campaignID)

	raw := form.Amount
	if raw == "custom" || raw == "" {
		raw = form.CustomAmount
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		h.redirectWithFlash(w, r, back, levelError, "Please enter a valid donation amount")
		return
	}

	req := port.DonationReq{
		CampaignID: campaignID,
		Amount:     amount,
		Currency:   form.Currency,
		Email:      form.Email,
	}
	resp, err := h.svc.Donate(r.Context(), req)
	if err != nil {
		url, msg := back, donationErrorMessage(err, req.Currency)
		var gerr *port.GatewayError
		switch {
		case errors.Is(err, port.ErrCampaignNotFound):
			url = "/campaigns"
		case errors.As(err, &gerr):
			logger.Error("payment initialization failed", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
			url = "/donate/error"
		case msg == "":
			logger.Error("donation failed", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
			url, msg = "/donate/error", "Something went wrong. Please try again."
		default:
			logger.Info("donation rejected", slog.Int64("campaign_id", campaignID), slog.String("reason", err.Error()))
		}
		h.redirectWithFlash(w, r, url, levelError, msg)
		return
	}

	http.Redirect(w, r, resp.AuthorizationURL, http.StatusSeeOther)
}

// donationErrorMessage returns the donor-facing message for err, or "" when
// err is not one the donor can act on.
func donationErrorMessage(err error, currency string) string {
	var gerr *port.GatewayError
	switch {
	case errors.Is(err, port.ErrInvalidAmount):
		return "Please enter a valid donation amount"
	case errors.Is(err, port.ErrUnsupportedCurrency):
		return "Selected currency is not supported"
	case errors.Is(err, port.ErrBelowMinimum):
		code := strings.ToUpper(strings.TrimSpace(currency))
		if code == "" {
			code = "NGN"
		}
		minimum, _ := money.Minimum(code)
		return "Minimum donation amount is " + money.Format(minimum, code)
	case errors.Is(err, port.ErrMissingEmail):
		return "Email address is required for donation receipt"
	case errors.Is(err, port.ErrInvalidEmail):
		return "Please enter a valid email address"
	case errors.Is(err, port.ErrCampaignNotFound):
		return "Invalid campaign selected"
	case errors.As(err, &gerr):
		return "Payment failed: " + gerr.Message
	default:
		return ""
	}
}
