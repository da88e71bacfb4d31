package readstore

import (
	"context"

	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/pkg/pgconv"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BindingReadStore struct {
	db db.DBTX
}

func NewBindingReadStore(dbtx db.DBTX) *BindingReadStore {
	return &BindingReadStore{db: dbtx}
}

func (r *BindingReadStore) FindByFoodie(ctx context.Context, foodieID uuid.UUID) (*queries.BindingView, error) {
	var view queries.BindingView
	err := r.db.QueryRow(ctx, `
		SELECT b.chef_id, u.nickname, b.binding_code, b.created_at
		FROM bindings b
		JOIN users u ON u.id = b.chef_id
		WHERE b.foodie_id = $1`, foodieID).Scan(
		&view.ChefID, &view.ChefNickname, &view.BindingCode, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("binding not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find binding", err)
	}
	return &view, nil
}
