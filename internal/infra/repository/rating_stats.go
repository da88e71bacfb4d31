package repository

import (
	"context"

	"chefbook/internal/infra"
	"chefbook/internal/infra/db"

	"github.com/google/uuid"
)

type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

// RecalcDishRating recomputes the dish's rating as the average of its live
// reviews rounded to one decimal, and its review count. A dish with no live
// reviews falls back to the 5.0 default. Runs in the same transaction as
// the review write so readers never observe a half-applied pair.
func (r *RatingStatsRepository) RecalcDishRating(ctx context.Context, tx db.DBTX, dishID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		UPDATE dishes SET
			rating = COALESCE(
				(SELECT ROUND(AVG(rating)::numeric, 1)
				 FROM reviews
				 WHERE dish_id = $1 AND deleted = false),
				5.0),
			review_count = (SELECT COUNT(*)
			                FROM reviews
			                WHERE dish_id = $1 AND deleted = false),
			updated_at = now()
		WHERE id = $1`, dishID)
	if err != nil {
		return infra.WrapRepoErr("failed to recalculate dish rating", err)
	}
	return nil
}

// RecalcChefRating recomputes the chef's aggregate rating over every live
// review they have received, with the same 5.0 fallback as dishes.
func (r *RatingStatsRepository) RecalcChefRating(ctx context.Context, tx db.DBTX, chefID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		UPDATE users SET
			rating = COALESCE(
				(SELECT ROUND(AVG(rating)::numeric, 1)
				 FROM reviews
				 WHERE chef_id = $1 AND deleted = false),
				5.0),
			updated_at = now()
		WHERE id = $1`, chefID)
	if err != nil {
		return infra.WrapRepoErr("failed to recalculate chef rating", err)
	}
	return nil
}
