package readstore

import (
	"context"
	"encoding/json"
	"time"

	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/pkg/pgconv"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	var (
		view     queries.OrderView
		addrJSON []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, order_no, foodie_id, chef_id, status, total_cents,
		       delivery_at, address_snapshot, remark, cancel_reason,
		       is_reviewed, created_at, updated_at, completed_at
		FROM orders WHERE id = $1`, orderID).Scan(
		&view.ID, &view.OrderNo, &view.FoodieID, &view.ChefID, &view.Status,
		&view.TotalCents, &view.DeliveryAt, &addrJSON, &view.Remark,
		&view.CancelReason, &view.IsReviewed, &view.CreatedAt, &view.UpdatedAt,
		&view.CompletedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	if err := json.Unmarshal(addrJSON, &view.Address); err != nil {
		return nil, infra.WrapRepoErr("failed to decode address snapshot", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT dish_id, dish_name, dish_image, price_cents, quantity
		FROM order_items WHERE order_id = $1
		ORDER BY dish_name`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.DishID, &item.DishName, &item.DishImage, &item.PriceCents, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		item.SubtotalCents = item.PriceCents * int64(item.Quantity)
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}

	return &view, nil
}

func (r *OrderReadStore) FindByFoodie(ctx context.Context, foodieID uuid.UUID, status string, limit, offset int32) ([]*queries.OrderListItem, error) {
	return r.list(ctx, `o.foodie_id = $1`, foodieID, status, limit, offset)
}

func (r *OrderReadStore) FindByChef(ctx context.Context, chefID uuid.UUID, status string, limit, offset int32) ([]*queries.OrderListItem, error) {
	return r.list(ctx, `o.chef_id = $1`, chefID, status, limit, offset)
}

// list shares one shape for both sides: an empty status matches all.
func (r *OrderReadStore) list(ctx context.Context, ownerCond string, ownerID uuid.UUID, status string, limit, offset int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.order_no, o.status, o.total_cents, o.delivery_at,
		       (SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id),
		       (SELECT i.dish_name FROM order_items i WHERE i.order_id = o.id ORDER BY i.dish_name LIMIT 1),
		       o.created_at
		FROM orders o
		WHERE `+ownerCond+` AND ($2 = '' OR o.status = $2::order_status)
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $3 OFFSET $4`,
		ownerID, status, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var result []*queries.OrderListItem
	for rows.Next() {
		var (
			item      queries.OrderListItem
			firstDish *string
			createdAt time.Time
		)
		if err := rows.Scan(&item.ID, &item.OrderNo, &item.Status, &item.TotalCents,
			&item.DeliveryAt, &item.ItemCount, &firstDish, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		if firstDish != nil {
			item.FirstDish = *firstDish
		}
		item.CreatedAt = createdAt
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order list", err)
	}
	return result, nil
}
