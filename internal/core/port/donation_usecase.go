package port

import (
	"context"

	"github.com/shopspring/decimal"

	"charity/internal/core/domain"
)

// DonationUseCase defines the business operations exposed by the donation
// service. This interface represents the primary port into the application
// domain. Mock implementations can be generated from this interface for
// testing.
type DonationUseCase interface {
	// ListCampaigns returns the active campaigns.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns an active campaign or ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// GetStats returns totals across all campaigns.
	GetStats(ctx context.Context) (*StatsResp, error)

	// Donate validates a donation, stores it as pending and initializes
	// the payment with the gateway. Validation failures are returned as
	// the Err* sentinels; gateway failures as *GatewayError.
	Donate(ctx context.Context, req DonationReq) (*DonationResp, error)

	// ConfirmPayment verifies reference with the gateway and completes the
	// transaction. It backs the browser callback.
	ConfirmPayment(ctx context.Context, reference string) (*Receipt, error)
	// HandleWebhook authenticates a gateway notification and completes the
	// transaction it reports.
	HandleWebhook(ctx context.Context, body []byte, signature string) (*domain.Transaction, error)
	// GetReceipt returns the completed donation for the success page,
	// re-verifying with the gateway if it is still pending.
	GetReceipt(ctx context.Context, reference string) (*Receipt, error)

	// CheckGateway probes gateway connectivity and returns the number of
	// banks it lists.
	CheckGateway(ctx context.Context) (int, error)
}

// DonationReq is a donation form submission after parsing.
type DonationReq struct {
	CampaignID int64
	Amount     decimal.Decimal
	Currency   string
	Email      string
}

// DonationResp tells the HTTP layer where to send the donor.
type DonationResp struct {
	TransactionID    int64
	Reference        string
	AuthorizationURL string
}

// Receipt is a completed donation and the campaign it credited.
type Receipt struct {
	Transaction domain.Transaction
	Campaign    domain.Campaign
}

// StatsResp contains totals across campaigns. Amounts are summed in major
// units regardless of currency.
type StatsResp struct {
	Campaigns       int64
	ActiveCampaigns int64
	TotalGoal       decimal.Decimal
	TotalRaised     decimal.Decimal
	Donations       int64
}
