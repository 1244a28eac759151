package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const defaultCampaignImage = "/static/images/campaigns/default.jpg"

// Campaign represents a fundraising cause.
// Amounts are kept in major currency units (e.g. naira, not kobo).
type Campaign struct {
	ID            int64
	Title         string
	Description   string
	GoalAmount    decimal.Decimal
	RaisedAmount  decimal.Decimal
	Currency      string
	IsActive      bool
	ImageFilename string
	CreatedAt     time.Time
}

// ProgressPercentage reports how much of the goal has been raised, capped at
// 100. A non-positive goal yields 0.
func (c Campaign) ProgressPercentage() float64 {
	if !c.GoalAmount.IsPositive() {
		return 0
	}
	pct := c.RaisedAmount.Div(c.GoalAmount).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	f, _ := pct.Float64()
	return f
}

// ImageURL returns the public path of the campaign image.
func (c Campaign) ImageURL() string {
	if c.ImageFilename == "" {
		return defaultCampaignImage
	}
	return "/static/images/campaigns/" + c.ImageFilename
}
