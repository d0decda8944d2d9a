package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns. Existing rows are left alone so the
// seeder is safe to run repeatedly.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	campaigns := []struct {
		id           int64
		title        string
		slug         string
		isEnabled    bool
		isOpen       bool
		hasTarget    bool
		targetAmount int64
	}{
		{1, "Save The Planet", "save-the-planet", true, true, true, 100000},
		{2, "Clean Water For All", "clean-water-for-all", true, true, false, 0},
		{3, "Open Source Sustainability", "open-source-sustainability", true, false, true, 250000},
		{4, "Community Garden", "community-garden", false, false, false, 0},
		{5, "Animal Shelter Fund", "animal-shelter-fund", true, true, true, 50000},
	}
	for _, c := range campaigns {
		_, err := db.Exec(ctx, `INSERT INTO fundrik_campaigns
    (id, title, slug, is_enabled, is_open, has_target, target_amount)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
			c.id, c.title, c.slug, c.isEnabled, c.isOpen, c.hasTarget, c.targetAmount)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", c.id, err)
		}
	}
	return nil
}
