package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	ID           uuid.UUID       `json:"id"`
	OrderNo      int64           `json:"order_no"`
	FoodieID     uuid.UUID       `json:"foodie_id"`
	ChefID       uuid.UUID       `json:"chef_id"`
	Status       string          `json:"status"`
	TotalCents   int64           `json:"total_cents"`
	DeliveryAt   time.Time       `json:"delivery_at"`
	Address      AddressView     `json:"address"`
	Remark       string          `json:"remark,omitempty"`
	CancelReason *string         `json:"cancel_reason,omitempty"`
	IsReviewed   bool            `json:"is_reviewed"`
	Items        []OrderItemView `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}

type AddressView struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Province string `json:"province,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Detail   string `json:"detail"`
}

type OrderItemView struct {
	DishID        uuid.UUID `json:"dish_id"`
	DishName      string    `json:"dish_name"`
	DishImage     string    `json:"dish_image,omitempty"`
	PriceCents    int64     `json:"price_cents"`
	Quantity      int32     `json:"quantity"`
	SubtotalCents int64     `json:"subtotal_cents"`
}

type OrderListItem struct {
	ID         uuid.UUID `json:"id"`
	OrderNo    int64     `json:"order_no"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	DeliveryAt time.Time `json:"delivery_at"`
	ItemCount  int32     `json:"item_count"`
	FirstDish  string    `json:"first_dish"`
	CreatedAt  time.Time `json:"created_at"`
}

type DishAvailabilityView struct {
	DishID    uuid.UUID `json:"dish_id"`
	Date      string    `json:"date"`
	MaxUnits  int32     `json:"max_units"`
	Reserved  int32     `json:"reserved"`
	Remaining int32     `json:"remaining"`
}

type BindingView struct {
	ChefID       uuid.UUID `json:"chef_id"`
	ChefNickname string    `json:"chef_nickname"`
	BindingCode  string    `json:"binding_code"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewView struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	DishID         uuid.UUID `json:"dish_id"`
	FoodieNickname string    `json:"foodie_nickname"`
	Rating         int32     `json:"rating"`
	Content        string    `json:"content,omitempty"`
	Images         []string  `json:"images,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// EarningsSummaryView is computed on demand from current order and tip
// statuses, so a tip flipping to failed later never leaves a stale total.
type EarningsSummaryView struct {
	CompletedOrderCents int64 `json:"completed_order_cents"`
	CompletedOrderCount int64 `json:"completed_order_count"`
	PaidTipCents        int64 `json:"paid_tip_cents"`
	PaidTipCount        int64 `json:"paid_tip_count"`
	TotalCents          int64 `json:"total_cents"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Payload   []byte    `json:"payload,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Nickname    string    `json:"nickname"`
	BindingCode *string   `json:"binding_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
