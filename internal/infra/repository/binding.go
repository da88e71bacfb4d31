package repository

import (
	"context"
	"time"

	"chefbook/internal/domain/binding"
	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BindingRepository struct{}

func NewBindingRepository() *BindingRepository {
	return &BindingRepository{}
}

// TryInsert leans on the foodie_id primary key for the one-active-binding
// invariant. Concurrent binds race at the storage boundary, not in
// application code; the loser reports KindDuplicateKey.
func (r *BindingRepository) TryInsert(ctx context.Context, tx db.DBTX, b *binding.Binding) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bindings (foodie_id, chef_id, binding_code, created_at)
		VALUES ($1, $2, $3, $4)`,
		b.FoodieID(), b.ChefID(), b.Code(), b.CreatedAt())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("foodie already bound", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("binding references missing user", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create binding", err)
	}
	return nil
}

func (r *BindingRepository) Delete(ctx context.Context, tx db.DBTX, foodieID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bindings WHERE foodie_id = $1`, foodieID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete binding", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no active binding", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BindingRepository) FindByFoodie(ctx context.Context, tx db.DBTX, foodieID uuid.UUID) (*binding.Binding, error) {
	var (
		fID, cID  uuid.UUID
		code      string
		createdAt time.Time
	)
	err := tx.QueryRow(ctx, `
		SELECT foodie_id, chef_id, binding_code, created_at
		FROM bindings WHERE foodie_id = $1`, foodieID).Scan(&fID, &cID, &code, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("binding not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find binding", err)
	}
	return binding.ReconstructBinding(fID, cID, code, createdAt), nil
}
