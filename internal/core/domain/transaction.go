package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a donation attempt.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
)

// PaymentMethodPaystack tags transactions processed through Paystack.
const PaymentMethodPaystack = "paystack"

// Transaction is a single donation attempt. Reference is empty until the
// gateway has been asked to initialize the payment.
type Transaction struct {
	ID            int64
	Amount        decimal.Decimal
	Currency      string
	CampaignID    int64
	Reference     string
	PaymentMethod string
	Channel       string // card, bank, ussd... as reported by the gateway
	Status        TransactionStatus
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// IsCompleted reports whether the donation has been credited.
func (t Transaction) IsCompleted() bool {
	return t.Status == StatusSuccess
}
