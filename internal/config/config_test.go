package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/internal/config/configs"
)

// TestLoadWithoutGatewayKeys ensures database-only commands can load their
// configuration when no Paystack credentials are present.
func TestLoadWithoutGatewayKeys(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/charity?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.ErrorIs(t, cfg.Paystack.Validate(), configs.ErrMissingSecretKey)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_x")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Paystack.Validate())
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "https://api.paystack.co", cfg.Paystack.BaseURL)
	assert.Equal(t, "BSF", cfg.Paystack.ReferencePrefix)
}
