package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"charity/internal/core/port"
)

const eventChargeSuccess = "charge.success"

type webhookEvent struct {
	Event string          `json:"event"`
	Data  transactionData `json:"data"`
}

// signature returns the HMAC-SHA512 of body under secret. Paystack sends
// it hex encoded in the signature header.
func signature(body []byte, secret string) []byte {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}

// validSignature compares in constant time. A header that is not valid
// hex never matches.
func validSignature(body []byte, header, secret string) bool {
	got, err := hex.DecodeString(header)
	if err != nil {
		return false
	}
	return hmac.Equal(signature(body, secret), got)
}

// ParseWebhook checks the signature of body when a webhook secret is
// configured, then extracts a successful charge. Events other than a
// successful charge return port.ErrUnhandledEvent.
func (c *Client) ParseWebhook(body []byte, header string) (*port.PaymentResult, error) {
	if c.webhookSecret != "" && !validSignature(body, header, c.webhookSecret) {
		c.logger.Warn("invalid webhook signature")
		return nil, port.ErrInvalidSignature
	}

	var ev webhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrMalformedPayload, err)
	}
	if ev.Event != eventChargeSuccess || ev.Data.Status != statusSuccess || ev.Data.Reference == "" {
		c.logger.Debug("ignoring webhook event", slog.String("event", ev.Event), slog.String("status", ev.Data.Status))
		return nil, port.ErrUnhandledEvent
	}
	return ev.Data.result(ev.Data.Reference), nil
}
