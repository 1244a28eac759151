package port

import (
	"context"
	"time"

	"charity/internal/core/domain"
)

// DonationRepository defines the persistence layer for campaigns and their
// transactions. It is an outbound port in hexagonal architecture.
// Implementations must be concurrency-safe and apply status transitions
// atomically.
type DonationRepository interface {
	// ListCampaigns returns campaigns ordered by creation time. When
	// activeOnly is set, inactive campaigns are skipped.
	ListCampaigns(ctx context.Context, activeOnly bool) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// CreateTransaction stores a pending transaction and fills in its ID
	// and CreatedAt.
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	// AssignReference records the gateway reference of a transaction.
	AssignReference(ctx context.Context, id int64, reference string) error
	// FindTransactionByReference returns the transaction with reference, or
	// nil when none exists.
	FindTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error)

	// CompleteTransaction moves a pending or failed transaction to success
	// and adds its amount to the campaign's raised total in one atomic
	// step. It returns false without changing anything when the
	// transaction is already successful.
	CompleteTransaction(ctx context.Context, reference string, c Completion) (bool, error)
	// FailTransaction moves a pending transaction to failed. It returns
	// false when the transaction is no longer pending.
	FailTransaction(ctx context.Context, reference string) (bool, error)

	// GetStats returns totals across all campaigns.
	GetStats(ctx context.Context) (*StatsResp, error)
}

// Completion carries the gateway details stored with a successful
// transaction.
type Completion struct {
	Channel     string
	CompletedAt time.Time
}
