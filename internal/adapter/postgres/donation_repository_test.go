package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/internal/config/configs"
	"charity/internal/core/domain"
	"charity/internal/core/port"
	"charity/internal/db"
)

// newTestRepository connects to the database named by PSQL_TEST_ADDRESS,
// migrates it and empties both tables. Tests are skipped when the variable
// is unset.
func newTestRepository(t *testing.T) (*DonationRepository, *pgxpool.Pool) {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(addr))
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE transactions, campaigns RESTART IDENTITY`)
	require.NoError(t, err)
	return NewDonationRepository(pool), pool
}

func insertCampaign(t *testing.T, pool *pgxpool.Pool, goal, raised int64) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `INSERT INTO campaigns (title, description, goal_amount, raised_amount, currency)
VALUES ('Clean Water', 'Wells for rural communities', $1, $2, 'NGN') RETURNING id`,
		decimal.NewFromInt(goal), decimal.NewFromInt(raised)).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestCompleteTransactionCreditsOnce(t *testing.T) {
	repo, pool := newTestRepository(t)
	ctx := context.Background()
	campaignID := insertCampaign(t, pool, 1_000_000, 250_000)

	txn := &domain.Transaction{Amount: decimal.NewFromInt(50_000), Currency: "NGN", CampaignID: campaignID}
	require.NoError(t, repo.CreateTransaction(ctx, txn))
	require.NoError(t, repo.AssignReference(ctx, txn.ID, "BSF_1_1700000000"))

	before, err := repo.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	assert.True(t, before.RaisedAmount.Equal(decimal.NewFromInt(250_000)))
	assert.InDelta(t, 25.0, before.ProgressPercentage(), 1e-9)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for n := 0; n < 2; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.CompleteTransaction(ctx, "BSF_1_1700000000", port.Completion{Channel: "card", CompletedAt: time.Now()})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, applied)

	after, err := repo.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	assert.True(t, after.RaisedAmount.Equal(decimal.NewFromInt(300_000)), "raised %s", after.RaisedAmount)
	assert.InDelta(t, 30.0, after.ProgressPercentage(), 1e-9)

	stored, err := repo.FindTransactionByReference(ctx, "BSF_1_1700000000")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.StatusSuccess, stored.Status)
	assert.Equal(t, "card", stored.Channel)
	assert.NotNil(t, stored.CompletedAt)

	failed, err := repo.FailTransaction(ctx, "BSF_1_1700000000")
	require.NoError(t, err)
	assert.False(t, failed, "a completed transaction must not become failed")
}

func TestFailTransactionLeavesCampaignUntouched(t *testing.T) {
	repo, pool := newTestRepository(t)
	ctx := context.Background()
	campaignID := insertCampaign(t, pool, 500_000, 0)

	txn := &domain.Transaction{Amount: decimal.NewFromInt(1_000), Currency: "NGN", CampaignID: campaignID}
	require.NoError(t, repo.CreateTransaction(ctx, txn))
	require.NoError(t, repo.AssignReference(ctx, txn.ID, "BSF_2_1700000000"))

	ok, err := repo.FailTransaction(ctx, "BSF_2_1700000000")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.FailTransaction(ctx, "BSF_2_1700000000")
	require.NoError(t, err)
	assert.False(t, ok, "already failed")

	c, err := repo.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	assert.True(t, c.RaisedAmount.IsZero())
}

// TestCompleteTransactionAfterFailure covers a donor who retries on the
// same checkout after a declined attempt: the verified payment is credited
// once.
func TestCompleteTransactionAfterFailure(t *testing.T) {
	repo, pool := newTestRepository(t)
	ctx := context.Background()
	campaignID := insertCampaign(t, pool, 500_000, 0)

	txn := &domain.Transaction{Amount: decimal.RequireFromString("1250.50"), Currency: "NGN", CampaignID: campaignID}
	require.NoError(t, repo.CreateTransaction(ctx, txn))
	require.NoError(t, repo.AssignReference(ctx, txn.ID, "BSF_3_1700000000"))

	ok, err := repo.FailTransaction(ctx, "BSF_3_1700000000")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.CompleteTransaction(ctx, "BSF_3_1700000000", port.Completion{Channel: "card", CompletedAt: time.Now()})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CompleteTransaction(ctx, "BSF_3_1700000000", port.Completion{Channel: "card", CompletedAt: time.Now()})
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.FindTransactionByReference(ctx, "BSF_3_1700000000")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.StatusSuccess, stored.Status)

	c, err := repo.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	assert.True(t, c.RaisedAmount.Equal(decimal.RequireFromString("1250.50")), "raised %s", c.RaisedAmount)
}

func TestLookupsReturnNilWhenMissing(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	c, err := repo.GetCampaign(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, c)

	txn, err := repo.FindTransactionByReference(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, txn)

	assert.ErrorIs(t, repo.AssignReference(ctx, 42, "BSF_42_1"), port.ErrTransactionNotFound)
}

func TestStats(t *testing.T) {
	repo, pool := newTestRepository(t)
	ctx := context.Background()
	insertCampaign(t, pool, 1_000_000, 250_000)
	insertCampaign(t, pool, 3_000_000, 1_000_000)

	s, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.Campaigns)
	assert.Equal(t, int64(2), s.ActiveCampaigns)
	assert.True(t, s.TotalGoal.Equal(decimal.NewFromInt(4_000_000)))
	assert.True(t, s.TotalRaised.Equal(decimal.NewFromInt(1_250_000)))
	assert.Equal(t, int64(0), s.Donations)

	list, err := repo.ListCampaigns(ctx, true)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
