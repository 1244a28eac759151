package paystack

import (
	"fmt"
	"time"
)

// NewReference builds the payment reference for a transaction row. The row
// id makes it unique per attempt; the timestamp keeps references distinct
// across database resets.
func NewReference(prefix string, transactionID int64, at time.Time) string {
	if prefix == "" {
		prefix = "BSF"
	}
	return fmt.Sprintf("%s_%d_%d", prefix, transactionID, at.Unix())
}
