package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder              = errors.New("order must contain at least one line")
	ErrInvalidQuantity         = errors.New("line quantity must be at least 1")
	ErrDishNotOnShelf          = errors.New("dish is not on shelf")
	ErrDishNotOwnedByChef      = errors.New("dish does not belong to the bound chef")
	ErrInvalidDeliveryDate     = errors.New("delivery date outside dish active dates")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrForbiddenTransition     = errors.New("actor may not drive this transition")
	ErrNotCancellable          = errors.New("order is not cancellable in its current status")
	ErrNegativeTotal           = errors.New("order total cannot be negative")
)

type Order struct {
	id           uuid.UUID
	orderNo      int64
	foodieID     uuid.UUID
	chefID       uuid.UUID
	lines        []Line
	total        Money
	deliveryAt   time.Time
	address      AddressSnapshot
	remark       Remark
	cancelReason string
	reviewed     bool
	paymentRef   string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
	completedAt  *time.Time
}

func ReconstructOrder(
	id uuid.UUID,
	orderNo int64,
	foodieID, chefID uuid.UUID,
	lines []Line,
	total Money,
	deliveryAt time.Time,
	address AddressSnapshot,
	remark Remark,
	cancelReason string,
	reviewed bool,
	paymentRef string,
	status Status,
	createdAt, updatedAt time.Time,
	completedAt *time.Time,
) *Order {
	return &Order{
		id:           id,
		orderNo:      orderNo,
		foodieID:     foodieID,
		chefID:       chefID,
		lines:        lines,
		total:        total,
		deliveryAt:   deliveryAt,
		address:      address,
		remark:       remark,
		cancelReason: cancelReason,
		reviewed:     reviewed,
		paymentRef:   paymentRef,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		completedAt:  completedAt,
	}
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) OrderNo() int64           { return o.orderNo }
func (o *Order) FoodieID() uuid.UUID      { return o.foodieID }
func (o *Order) ChefID() uuid.UUID        { return o.chefID }
func (o *Order) Lines() []Line            { return o.lines }
func (o *Order) Total() Money             { return o.total }
func (o *Order) DeliveryAt() time.Time    { return o.deliveryAt }
func (o *Order) Address() AddressSnapshot { return o.address }
func (o *Order) Remark() Remark           { return o.remark }
func (o *Order) CancelReason() string     { return o.cancelReason }
func (o *Order) Reviewed() bool           { return o.reviewed }
func (o *Order) PaymentRef() string       { return o.paymentRef }
func (o *Order) Status() Status           { return o.status }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
func (o *Order) CompletedAt() *time.Time  { return o.completedAt }

// DeliveryDateKey is the capacity-ledger key this order's lines are
// reserved under.
func (o *Order) DeliveryDateKey() string {
	return DeliveryDate(o.deliveryAt)
}

func (o *Order) IsOwnedByFoodie(id uuid.UUID) bool { return o.foodieID == id }
func (o *Order) IsOwnedByChef(id uuid.UUID) bool   { return o.chefID == id }

// ReviewEligible: reviews are accepted only once, and only on completed
// orders. The reviewed flag transitions false→true exactly once.
func (o *Order) ReviewEligible() error {
	if o.status != StatusCompleted {
		return ErrOrderNotCompleted
	}
	if o.reviewed {
		return ErrAlreadyReviewed
	}
	return nil
}

var (
	ErrOrderNotCompleted = errors.New("order is not completed")
	ErrAlreadyReviewed   = errors.New("order already reviewed")
)
