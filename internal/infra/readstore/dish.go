package readstore

import (
	"context"
	"encoding/json"

	"chefbook/internal/domain/order"
	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/pkg/pgconv"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type DishReadStore struct {
	db db.DBTX
}

func NewDishReadStore(dbtx db.DBTX) *DishReadStore {
	return &DishReadStore{db: dbtx}
}

// SpecsByIDs loads the catalog snapshots order creation freezes lines from.
// Missing dishes are simply absent from the map; the caller decides what a
// hole means.
func (r *DishReadStore) SpecsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]order.DishSpec, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, chef_id, name, image, price_cents, max_units,
		       to_json(active_dates), on_shelf
		FROM dishes WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dish specs", err)
	}
	defer rows.Close()

	specs := make(map[uuid.UUID]order.DishSpec, len(ids))
	for rows.Next() {
		var (
			spec      order.DishSpec
			datesJSON []byte
		)
		if err := rows.Scan(&spec.ID, &spec.ChefID, &spec.Name, &spec.Image,
			&spec.PriceCents, &spec.MaxUnits, &datesJSON, &spec.OnShelf); err != nil {
			return nil, infra.WrapRepoErr("failed to scan dish spec", err)
		}
		if err := json.Unmarshal(datesJSON, &spec.ActiveDates); err != nil {
			return nil, infra.WrapRepoErr("failed to decode active dates", err)
		}
		specs[spec.ID] = spec
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate dish specs", err)
	}
	return specs, nil
}

func (r *DishReadStore) FindAvailability(ctx context.Context, dishID uuid.UUID, date string) (*queries.DishAvailabilityView, error) {
	view := queries.DishAvailabilityView{DishID: dishID, Date: date}
	err := r.db.QueryRow(ctx, `
		SELECT d.max_units,
		       COALESCE(a.reserved_units, 0)
		FROM dishes d
		LEFT JOIN daily_availability a
		       ON a.dish_id = d.id AND a.on_date = $2::date
		WHERE d.id = $1`, dishID, date).Scan(&view.MaxUnits, &view.Reserved)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dish not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read dish availability", err)
	}

	view.Remaining = view.MaxUnits - view.Reserved
	if view.Remaining < 0 {
		view.Remaining = 0
	}
	return &view, nil
}

func (r *DishReadStore) FindReviews(ctx context.Context, dishID uuid.UUID, limit, offset int32) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.order_id, r.dish_id, u.nickname, r.rating, r.content,
		       r.images, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.foodie_id
		WHERE r.dish_id = $1 AND r.deleted = false
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3`, dishID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dish reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var (
			view       queries.ReviewView
			imagesJSON []byte
		)
		if err := rows.Scan(&view.ID, &view.OrderID, &view.DishID, &view.FoodieNickname,
			&view.Rating, &view.Content, &imagesJSON, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		if len(imagesJSON) > 0 {
			if err := json.Unmarshal(imagesJSON, &view.Images); err != nil {
				return nil, infra.WrapRepoErr("failed to decode review images", err)
			}
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reviews", err)
	}
	return result, nil
}
