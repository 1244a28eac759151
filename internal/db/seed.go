package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type seedCampaign struct {
	title       string
	description string
	goal        int64
	raised      int64
	image       string
}

var demoCampaigns = []seedCampaign{
	{
		title: "Kubwa Hospital Outreach",
		description: "Compassionate hospital outreach providing medical supplies, settling hospital bills, " +
			"and supporting pregnant and nursing mothers with essential food items.",
		goal:   4_000_000,
		raised: 1_950_000,
		image:  "kubwa-hospital-outreach.jpg",
	},
	{
		title: "Utako Food Drive",
		description: "Annual Christmas food drive bringing food packs and hygiene care packages " +
			"to underprivileged families during the festive season.",
		goal:   1_500_000,
		raised: 1_050_000,
		image:  "utako-food-drive.jpg",
	},
	{
		title: "SS3 Students Scholarship Program",
		description: "Sensitization, mentorship and WAEC/NECO exam fee sponsorship for SS3 students " +
			"at Federal Government Girls' College, Bwari.",
		goal:   2_500_000,
		raised: 1_000_000,
		image:  "ss3-scholarship-program.jpg",
	},
}

// Seed inserts the demo campaigns when the campaigns table is empty. It
// reports how many rows were inserted.
func Seed(ctx context.Context, db *pgxpool.Pool) (int, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var existing int64
	if err = tx.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&existing); err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	for _, c := range demoCampaigns {
		_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (title, description, goal_amount, raised_amount, currency, is_active, image_filename, created_at)
VALUES ($1,$2,$3,$4,'NGN',TRUE,$5,now())`,
			c.title, c.description, decimal.NewFromInt(c.goal), decimal.NewFromInt(c.raised), c.image)
		if err != nil {
			return 0, err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(demoCampaigns), nil
}
