package paystack

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"charity/internal/core/money"
	"charity/internal/core/port"
)

type initializeRequest struct {
	Email       string   `json:"email"`
	Amount      int64    `json:"amount"`
	Currency    string   `json:"currency"`
	Reference   string   `json:"reference"`
	CallbackURL string   `json:"callback_url"`
	Metadata    metadata `json:"metadata"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Initialize registers the payment with Paystack and returns the hosted
// checkout URL. The amount is sent in minor units.
func (c *Client) Initialize(ctx context.Context, req port.InitializeReq) (*port.InitializeResp, error) {
	if !req.Amount.IsPositive() {
		return nil, &port.GatewayError{Message: "Payment amount must be greater than zero"}
	}
	if req.Email == "" {
		return nil, &port.GatewayError{Message: "Donor email is required"}
	}

	reference := NewReference(c.prefix, req.Metadata.TransactionID, c.now())
	logger := c.logger.With(slog.String("reference", reference))

	body := initializeRequest{
		Email:       req.Email,
		Amount:      money.ToMinorUnits(req.Amount),
		Currency:    req.Currency,
		Reference:   reference,
		CallbackURL: req.CallbackURL,
		Metadata:    newMetadata(req.Metadata),
	}

	var resp apiResponse[initializeData]
	status, err := c.do(ctx, http.MethodPost, "/transaction/initialize", true, body, &resp)
	if err != nil {
		gerr := transportError(err,
			"Payment service timeout. Please try again.",
			"Payment service unavailable. Please try again.")
		logger.Error("paystack initialize failed", slog.Any("error", err))
		return nil, gerr
	}
	if status != http.StatusOK {
		logger.Error("paystack initialize http error", slog.Int("status", status))
		return nil, &port.GatewayError{
			Message: fmt.Sprintf("Payment service error (HTTP %d)", status),
			Err:     fmt.Errorf("initialize: unexpected status %d", status),
		}
	}
	if !resp.Status {
		msg := resp.Message
		if msg == "" {
			msg = "Payment initialization failed"
		}
		logger.Error("paystack initialize rejected", slog.String("message", resp.Message))
		return nil, &port.GatewayError{Message: msg}
	}

	if resp.Data.Reference != "" {
		reference = resp.Data.Reference
	}
	logger.Info("paystack payment initialized")
	return &port.InitializeResp{
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
		Reference:        reference,
	}, nil
}
