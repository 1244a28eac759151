package configs

import (
	"errors"
	"time"
)

// Paystack holds credentials and limits for the payment gateway. The
// secret key authorizes every API call; the webhook secret, when set,
// enables signature checks on inbound notifications. Only commands that
// talk to the gateway call Validate, so migrate and seed run without keys.
type Paystack struct {
	PublicKey     string `env:"PUBLIC_KEY"`
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	BaseURL string `env:"BASE_URL" envDefault:"https://api.paystack.co"`

	// Timeout bounds initialize and verify calls. ProbeTimeout bounds the
	// bank-list connectivity probe.
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT" envDefault:"10s"`

	// ReferencePrefix starts every generated payment reference.
	ReferencePrefix string `env:"REFERENCE_PREFIX" envDefault:"BSF"`
}

// ErrMissingSecretKey is returned by Validate when PAYSTACK_SECRET_KEY is
// unset.
var ErrMissingSecretKey = errors.New("PAYSTACK_SECRET_KEY is required")

// Validate reports whether the section can authorize gateway calls.
func (c Paystack) Validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}
