package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"charity/internal/core/domain"
	"charity/internal/core/port"
)

const campaignColumns = `id, title, description, goal_amount, raised_amount, currency, is_active, image_filename, created_at`

const transactionColumns = `id, amount, currency, campaign_id, reference, payment_method, channel, status, created_at, completed_at`

// DonationRepository implements port.DonationRepository using pgxpool for
// PostgreSQL.
type DonationRepository struct {
	pool *pgxpool.Pool
}

// NewDonationRepository returns a new repository instance.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

// ListCampaigns returns campaigns, oldest first.
func (r *DonationRepository) ListCampaigns(ctx context.Context, activeOnly bool) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// GetCampaign returns a campaign by id.
func (r *DonationRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateTransaction inserts a pending transaction without a reference.
func (r *DonationRepository) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	if t.PaymentMethod == "" {
		t.PaymentMethod = domain.PaymentMethodPaystack
	}
	t.Status = domain.StatusPending
	t.CreatedAt = time.Now().UTC()
	return r.pool.QueryRow(ctx, `INSERT INTO transactions (amount, currency, campaign_id, payment_method, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		t.Amount, t.Currency, t.CampaignID, t.PaymentMethod, string(t.Status), t.CreatedAt).Scan(&t.ID)
}

// AssignReference stores the gateway reference of a transaction.
func (r *DonationRepository) AssignReference(ctx context.Context, id int64, reference string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE transactions SET reference = $2 WHERE id = $1`, id, reference)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrTransactionNotFound
	}
	return nil
}

// FindTransactionByReference returns a transaction by gateway reference.
func (r *DonationRepository) FindTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	t, err := scanTransaction(r.pool.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE reference = $1`, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CompleteTransaction marks a pending or failed transaction successful and
// credits its campaign. The conditional update takes the row lock, so a concurrent
// caller for the same reference waits and then matches no rows.
func (r *DonationRepository) CompleteTransaction(ctx context.Context, reference string, c port.Completion) (applied bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil || !applied {
			_ = tx.Rollback(ctx)
		}
	}()

	var (
		campaignID int64
		amount     decimal.Decimal
	)
	err = tx.QueryRow(ctx, `UPDATE transactions
SET status = 'success', channel = NULLIF($2, ''), completed_at = $3
WHERE reference = $1 AND status IN ('pending', 'failed')
RETURNING campaign_id, amount`, reference, c.Channel, c.CompletedAt).Scan(&campaignID, &amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err = tx.Exec(ctx, `UPDATE campaigns SET raised_amount = raised_amount + $1 WHERE id = $2`, amount, campaignID); err != nil {
		return false, err
	}
	if err = tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// FailTransaction marks a pending transaction failed.
func (r *DonationRepository) FailTransaction(ctx context.Context, reference string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE transactions SET status = 'failed' WHERE reference = $1 AND status = 'pending'`, reference)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// GetStats returns aggregated campaign and donation totals.
func (r *DonationRepository) GetStats(ctx context.Context) (*port.StatsResp, error) {
	var s port.StatsResp
	err := r.pool.QueryRow(ctx, `SELECT
    count(*),
    count(*) FILTER (WHERE is_active),
    COALESCE(sum(goal_amount), 0),
    COALESCE(sum(raised_amount), 0),
    (SELECT count(*) FROM transactions WHERE status = 'success')
FROM campaigns`).Scan(&s.Campaigns, &s.ActiveCampaigns, &s.TotalGoal, &s.TotalRaised, &s.Donations)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c     domain.Campaign
		image *string
	)
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.GoalAmount, &c.RaisedAmount,
		&c.Currency, &c.IsActive, &image, &c.CreatedAt)
	if image != nil {
		c.ImageFilename = *image
	}
	return c, err
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var (
		t         domain.Transaction
		reference *string
		channel   *string
		status    string
	)
	err := row.Scan(&t.ID, &t.Amount, &t.Currency, &t.CampaignID, &reference, &t.PaymentMethod,
		&channel, &status, &t.CreatedAt, &t.CompletedAt)
	if reference != nil {
		t.Reference = *reference
	}
	if channel != nil {
		t.Channel = *channel
	}
	t.Status = domain.TransactionStatus(status)
	return t, err
}
