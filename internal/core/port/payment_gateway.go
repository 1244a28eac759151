package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentGateway is the outbound port to the hosted payment provider. All
// methods block on network I/O with a bounded timeout and never retry.
type PaymentGateway interface {
	// Initialize registers a payment attempt with the gateway and returns
	// the hosted page the donor must be redirected to.
	Initialize(ctx context.Context, req InitializeReq) (*InitializeResp, error)
	// Verify asks the gateway for the outcome of reference. It is safe to
	// call any number of times for the same reference.
	Verify(ctx context.Context, reference string) (*PaymentResult, error)
	// ParseWebhook authenticates and decodes a raw webhook body. Only
	// successful charge events produce a result; other events return
	// ErrUnhandledEvent.
	ParseWebhook(body []byte, signature string) (*PaymentResult, error)
	// Ping checks connectivity and returns the number of banks listed.
	Ping(ctx context.Context) (int, error)
}

// PaymentMetadata is attached to a payment on initialization and echoed
// back by the gateway on verification and in webhooks.
type PaymentMetadata struct {
	CampaignID    int64
	CampaignTitle string
	TransactionID int64
	Amount        decimal.Decimal
}

// InitializeReq describes a donation the gateway should collect.
type InitializeReq struct {
	Email       string
	Amount      decimal.Decimal
	Currency    string
	CallbackURL string
	Metadata    PaymentMetadata
}

// InitializeResp holds the gateway-hosted page and the generated reference.
type InitializeResp struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaymentResult is a payment the gateway reports as successful. Amount is
// in major units.
type PaymentResult struct {
	Reference string
	Amount    decimal.Decimal
	Currency  string
	Status    string
	Channel   string
	PaidAt    time.Time
	Metadata  PaymentMetadata
}
