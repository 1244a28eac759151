package port

import (
	"errors"
	"fmt"
)

// Validation errors, in the order donation input is checked.
var (
	ErrInvalidAmount       = errors.New("invalid donation amount")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrBelowMinimum        = errors.New("amount below currency minimum")
	ErrMissingEmail        = errors.New("donor email is required")
	ErrInvalidEmail        = errors.New("donor email is malformed")
	ErrCampaignNotFound    = errors.New("campaign not found")
)

// Integrity and lookup errors.
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAmountMismatch      = errors.New("verified amount does not match transaction")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrUnhandledEvent      = errors.New("unhandled webhook event")
	ErrMalformedPayload    = errors.New("malformed webhook payload")
)

// GatewayError reports a failed call to the payment gateway. Message is
// safe to show to a donor; Err carries the underlying cause for logs.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err == nil {
		return "gateway: " + e.Message
	}
	return fmt.Sprintf("gateway: %s: %v", e.Message, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// PaymentNotSuccessfulError is returned by verification when the gateway
// knows the reference but the payment has not succeeded.
type PaymentNotSuccessfulError struct {
	Reference string
	Status    string
}

func (e *PaymentNotSuccessfulError) Error() string {
	return fmt.Sprintf("payment %s not successful: status %q", e.Reference, e.Status)
}
