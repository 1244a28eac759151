package db

import (
	"context"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"charity/internal/config/configs"
)

func TestSeedInsertsOnlyIntoEmptyTable(t *testing.T) {
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, Migrate(addr))

	ctx := context.Background()
	pool, err := NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `TRUNCATE transactions, campaigns RESTART IDENTITY`)
	require.NoError(t, err)

	n, err := Seed(ctx, pool)
	require.NoError(t, err)
	require.Equal(t, len(demoCampaigns), n)

	n, err = Seed(ctx, pool)
	require.NoError(t, err)
	require.Zero(t, n)
}
