package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"charity/internal/adapter/paystack"
	"charity/internal/core/port"
)

const maxWebhookBody = 1 << 20

// handleWebhook accepts gateway notifications. The body is read raw because
// the signature covers the exact bytes sent. Responses only tell the
// gateway whether to redeliver: 5xx for failures worth retrying, 2xx for
// anything retrying cannot fix.
func (h *Handler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		logger.Warn("read webhook body", slog.Any("error", err))
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	txn, err := h.svc.HandleWebhook(r.Context(), body, r.Header.Get(paystack.SignatureHeader))
	switch {
	case err == nil:
		logger.Info("webhook processed",
			slog.String("reference", txn.Reference),
			slog.String("status", string(txn.Status)))
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, port.ErrInvalidSignature):
		logger.Warn("webhook signature rejected")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
	case errors.Is(err, port.ErrUnhandledEvent):
		logger.Debug("webhook event ignored", slog.Any("error", err))
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, port.ErrMalformedPayload):
		logger.Warn("malformed webhook", slog.Any("error", err))
		http.Error(w, "malformed payload", http.StatusBadRequest)
	case errors.Is(err, port.ErrTransactionNotFound), errors.Is(err, port.ErrAmountMismatch):
		logger.Warn("webhook not applied", slog.Any("error", err))
		w.WriteHeader(http.StatusOK)
	default:
		logger.Error("webhook processing failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
