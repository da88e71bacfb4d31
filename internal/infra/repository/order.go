package repository

import (
	"context"
	"encoding/json"
	"time"

	"chefbook/internal/domain/order"
	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order header and its frozen line items. Items carry
// the dish name, image and price as of order time.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	addr, err := json.Marshal(o.Address())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode address snapshot", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, order_no, foodie_id, chef_id, status, total_cents,
			delivery_at, address_snapshot, remark, is_reviewed,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, $10, $11)`,
		o.ID(), o.OrderNo(), o.FoodieID(), o.ChefID(), o.Status().String(),
		o.Total().Cents(), o.DeliveryAt(), addr, o.Remark().String(),
		o.CreatedAt(), o.UpdatedAt())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("duplicate order", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("order references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for _, line := range o.Lines() {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (
				id, order_id, dish_id, dish_name, dish_image, price_cents, quantity
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New(), o.ID(), line.DishID, line.DishName, line.DishImage,
			line.PriceCents, line.Quantity)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return o.ID(), nil
}

// UpdateStatus moves an order between statuses only when its current status
// still matches the expected one. A zero-rows result means another writer
// got there first (or the delivery is a duplicate) and surfaces KindConflict.
func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, from, to order.Status) error {
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`,
		orderID, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

// Complete stamps completed_at along with the delivering→completed move.
func (r *OrderRepository) Complete(ctx context.Context, tx db.DBTX, orderID uuid.UUID, completedAt time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET status = $2, completed_at = $3, updated_at = now()
		WHERE id = $1 AND status = $4`,
		orderID, order.StatusCompleted.String(), completedAt, order.StatusDelivering.String())
	if err != nil {
		return infra.WrapRepoErr("failed to complete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

// Cancel records the reason alongside the status change.
func (r *OrderRepository) Cancel(ctx context.Context, tx db.DBTX, orderID uuid.UUID, from order.Status, reason string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET status = $3, cancel_reason = $4, updated_at = now()
		WHERE id = $1 AND status = $2`,
		orderID, from.String(), order.StatusCancelled.String(), reason)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

// SetPaymentRef attaches the gateway reference when an intent is created.
func (r *OrderRepository) SetPaymentRef(ctx context.Context, tx db.DBTX, orderID uuid.UUID, ref string) error {
	_, err := tx.Exec(ctx, `
		UPDATE orders SET payment_ref = $2, updated_at = now() WHERE id = $1`,
		orderID, ref)
	if err != nil {
		return infra.WrapRepoErr("failed to set payment reference", err)
	}
	return nil
}

// MarkReviewed flips is_reviewed false→true exactly once. The conditional
// form is what makes concurrent double-review attempts lose cleanly.
func (r *OrderRepository) MarkReviewed(ctx context.Context, tx db.DBTX, orderID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET is_reviewed = true, updated_at = now()
		WHERE id = $1 AND is_reviewed = false`,
		orderID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order reviewed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order already reviewed", nil, infra.KindConflict)
	}
	return nil
}

// FindByID reconstructs the full aggregate, items included.
func (r *OrderRepository) FindByID(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*order.Order, error) {
	var (
		id           uuid.UUID
		orderNo      int64
		foodieID     uuid.UUID
		chefID       uuid.UUID
		status       string
		totalCents   int64
		deliveryAt   time.Time
		addrJSON     []byte
		remarkText   string
		cancelReason *string
		reviewed     bool
		paymentRef   *string
		createdAt    time.Time
		updatedAt    time.Time
		completedAt  *time.Time
	)
	err := tx.QueryRow(ctx, `
		SELECT id, order_no, foodie_id, chef_id, status, total_cents,
		       delivery_at, address_snapshot, remark, cancel_reason,
		       is_reviewed, payment_ref, created_at, updated_at, completed_at
		FROM orders WHERE id = $1`, orderID).Scan(
		&id, &orderNo, &foodieID, &chefID, &status, &totalCents,
		&deliveryAt, &addrJSON, &remarkText, &cancelReason,
		&reviewed, &paymentRef, &createdAt, &updatedAt, &completedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	var addr order.AddressSnapshot
	if err := json.Unmarshal(addrJSON, &addr); err != nil {
		return nil, infra.WrapRepoErr("failed to decode address snapshot", err)
	}

	lines, err := r.findLines(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	remark, err := order.NewRemark(remarkText)
	if err != nil {
		return nil, infra.WrapRepoErr("stored remark invalid", err)
	}

	return order.ReconstructOrder(
		id, orderNo, foodieID, chefID, lines,
		order.NewMoney(totalCents), deliveryAt, addr, remark,
		deref(cancelReason), reviewed, deref(paymentRef),
		order.Status(status), createdAt, updatedAt, completedAt,
	), nil
}

// FindByOrderNo resolves payment references of the form "order-<order_no>".
func (r *OrderRepository) FindByOrderNo(ctx context.Context, tx db.DBTX, orderNo int64) (*order.Order, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM orders WHERE order_no = $1`, orderNo).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by number", err)
	}
	return r.FindByID(ctx, tx, id)
}

func (r *OrderRepository) findLines(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]order.Line, error) {
	rows, err := tx.Query(ctx, `
		SELECT dish_id, dish_name, dish_image, price_cents, quantity
		FROM order_items WHERE order_id = $1
		ORDER BY dish_name`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var l order.Line
		if err := rows.Scan(&l.DishID, &l.DishName, &l.DishImage, &l.PriceCents, &l.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return lines, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
