package paystack

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"charity/internal/core/port"
)

// flexInt accepts ids echoed back either as JSON numbers or strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}

type metadata struct {
	CampaignID    flexInt         `json:"campaign_id"`
	CampaignTitle string          `json:"campaign_title,omitempty"`
	TransactionID flexInt         `json:"transaction_db_id"`
	Amount        decimal.Decimal `json:"amount"`
}

func newMetadata(m port.PaymentMetadata) metadata {
	return metadata{
		CampaignID:    flexInt(m.CampaignID),
		CampaignTitle: m.CampaignTitle,
		TransactionID: flexInt(m.TransactionID),
		Amount:        m.Amount,
	}
}

// decodeMetadata reads the metadata object Paystack echoes back. The field
// may be absent, an empty string or an object; anything that is not a
// well-formed object yields empty metadata.
func decodeMetadata(raw json.RawMessage) port.PaymentMetadata {
	var m metadata
	if len(raw) == 0 || raw[0] != '{' {
		return port.PaymentMetadata{}
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return port.PaymentMetadata{}
	}
	return port.PaymentMetadata{
		CampaignID:    int64(m.CampaignID),
		CampaignTitle: m.CampaignTitle,
		TransactionID: int64(m.TransactionID),
		Amount:        m.Amount,
	}
}
