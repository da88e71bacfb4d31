package repository

import (
	"context"
	"encoding/json"

	"chefbook/internal/domain/review"
	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rv *review.Review) (uuid.UUID, error) {
	images, err := json.Marshal(rv.Images())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode review images", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO reviews (
			id, order_id, foodie_id, chef_id, dish_id,
			rating, content, images, deleted, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9)`,
		rv.ID(), rv.OrderID(), rv.FoodieID(), rv.ChefID(), rv.DishID(),
		rv.Rating().Value(), rv.Content().String(), images, rv.CreatedAt())
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("review references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return rv.ID(), nil
}

func (r *ReviewRepository) SoftDelete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE reviews SET deleted = true WHERE id = $1 AND deleted = false`, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
