package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"charity/internal/core/money"
	"charity/internal/core/port"
)

const statusSuccess = "success"

// transactionData is the transaction object returned by verify and carried
// by charge webhooks.
type transactionData struct {
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Channel   string          `json:"channel"`
	PaidAt    time.Time       `json:"paid_at"`
	Metadata  json.RawMessage `json:"metadata"`
}

func (d transactionData) result(reference string) *port.PaymentResult {
	if d.Reference != "" {
		reference = d.Reference
	}
	return &port.PaymentResult{
		Reference: reference,
		Amount:    money.FromMinorUnits(d.Amount),
		Currency:  d.Currency,
		Status:    d.Status,
		Channel:   d.Channel,
		PaidAt:    d.PaidAt,
		Metadata:  decodeMetadata(d.Metadata),
	}
}

// Verify fetches the outcome of reference. Only an inner status of
// "success" yields a result; other statuses return
// *port.PaymentNotSuccessfulError.
func (c *Client) Verify(ctx context.Context, reference string) (*port.PaymentResult, error) {
	logger := c.logger.With(slog.String("reference", reference))

	var resp apiResponse[transactionData]
	status, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), true, nil, &resp)
	if err != nil {
		logger.Error("paystack verify failed", slog.Any("error", err))
		return nil, transportError(err, "Payment verification timeout", "Payment verification failed")
	}
	if status != http.StatusOK {
		logger.Error("paystack verify http error", slog.Int("status", status))
		return nil, &port.GatewayError{
			Message: "Payment verification failed",
			Err:     fmt.Errorf("verify: unexpected status %d", status),
		}
	}
	if !resp.Status {
		logger.Error("paystack verify rejected", slog.String("message", resp.Message))
		return nil, &port.GatewayError{Message: "Payment verification failed", Err: fmt.Errorf("verify: %s", resp.Message)}
	}
	if resp.Data.Status != statusSuccess {
		logger.Info("paystack payment not successful", slog.String("status", resp.Data.Status))
		return nil, &port.PaymentNotSuccessfulError{Reference: reference, Status: resp.Data.Status}
	}
	return resp.Data.result(reference), nil
}
