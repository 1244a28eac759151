package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"charity/internal/core/port"
)

// handleCallback is where the gateway sends the donor after the payment
// page. The payment is verified server-side; the query string is never
// trusted on its own.
func (h *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)
	reference := strings.TrimSpace(r.URL.Query().Get("reference"))
	if reference == "" {
		// the gateway sends trxref as well on some channels
		reference = strings.TrimSpace(r.URL.Query().Get("trxref"))
	}
	if reference == "" {
		h.redirectWithFlash(w, r, "/donate/error", levelError, "Invalid payment reference")
		return
	}
	logger = logger.With(slog.String("reference", reference))

	_, err := h.svc.ConfirmPayment(r.Context(), reference)
	if err != nil {
		h.redirectWithFlash(w, r, "/donate/error", levelError, h.paymentErrorMessage(logger, err))
		return
	}

	h.redirectWithFlash(w, r, "/donate/success/"+url.PathEscape(reference), levelSuccess,
		"Thank you! Your donation was successful.")
}

func (h *Handler) paymentErrorMessage(logger *slog.Logger, err error) string {
	var (
		gerr *port.GatewayError
		nerr *port.PaymentNotSuccessfulError
	)
	switch {
	case errors.As(err, &nerr):
		logger.Info("payment not successful", slog.String("status", nerr.Status))
		return "Payment was not successful. Please try again."
	case errors.As(err, &gerr):
		logger.Error("payment verification failed", slog.Any("error", err))
		return "Payment verification failed: " + gerr.Message
	case errors.Is(err, port.ErrTransactionNotFound):
		logger.Warn("callback for unknown reference")
		return "Transaction not found"
	default:
		logger.Error("payment confirmation failed", slog.Any("error", err))
		return "We could not confirm your payment. Please contact us if you were charged."
	}
}

func (h *Handler) handleDonateSuccess(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	logger := h.requestLogger(r).With(slog.String("reference", reference))

	receipt, err := h.svc.GetReceipt(r.Context(), reference)
	if err != nil {
		h.redirectWithFlash(w, r, "/donate/error", levelError, h.paymentErrorMessage(logger, err))
		return
	}
	h.render(w, r, http.StatusOK, "donate_success", "Thank you", receipt)
}

func (h *Handler) handleDonateError(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "donate_error", "Payment error", nil)
}

// handleTestPaystack probes the gateway and reports the result as a flash
// on the home page.
func (h *Handler) handleTestPaystack(w http.ResponseWriter, r *http.Request) {
	banks, err := h.svc.CheckGateway(r.Context())
	if err != nil {
		h.requestLogger(r).Error("gateway probe failed", slog.Any("error", err))
		msg := "Paystack connection failed"
		var gerr *port.GatewayError
		if errors.As(err, &gerr) {
			msg = gerr.Message
		}
		h.redirectWithFlash(w, r, "/", levelError, msg)
		return
	}
	h.redirectWithFlash(w, r, "/", levelSuccess,
		"Paystack connection successful! Found "+strconv.Itoa(banks)+" banks.")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
