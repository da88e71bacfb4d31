package repository

import (
	"context"

	"chefbook/internal/domain/tip"
	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/pkg/pgconv"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type TipRepository struct{}

func NewTipRepository() *TipRepository {
	return &TipRepository{}
}

func (r *TipRepository) Create(ctx context.Context, tx db.DBTX, t *tip.Tip, paymentRef string) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO tips (
			id, foodie_id, chef_id, order_id, amount_cents,
			message, status, payment_ref, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		t.ID(), t.FoodieID(), t.ChefID(), t.OrderID(), t.AmountCents(),
		t.Message(), string(t.Status()), paymentRef, t.CreatedAt())
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("tip references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create tip", err)
	}
	return t.ID(), nil
}

// Settle moves a tip out of pending exactly once. Later deliveries for the
// same reference hit zero rows and surface KindConflict, which callback
// handling treats as an idempotent duplicate.
func (r *TipRepository) Settle(ctx context.Context, tx db.DBTX, tipID uuid.UUID, to tip.Status) error {
	tag, err := tx.Exec(ctx, `
		UPDATE tips
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3`,
		tipID, string(to), string(tip.StatusPending))
	if err != nil {
		return infra.WrapRepoErr("failed to settle tip", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tip already settled", nil, infra.KindConflict)
	}
	return nil
}

func (r *TipRepository) FindByID(ctx context.Context, tx db.DBTX, tipID uuid.UUID) (*shared.TipSnapshot, error) {
	var (
		snap   shared.TipSnapshot
		status string
	)
	err := tx.QueryRow(ctx, `
		SELECT id, foodie_id, chef_id, order_id, amount_cents, status
		FROM tips WHERE id = $1`, tipID).Scan(
		&snap.ID, &snap.FoodieID, &snap.ChefID, &snap.OrderID,
		&snap.AmountCents, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tip not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tip", err)
	}
	snap.Status = tip.Status(status)
	return &snap, nil
}
