package shared

import (
	"context"
	"time"

	"chefbook/internal/domain/binding"
	"chefbook/internal/domain/order"
	"chefbook/internal/domain/review"
	"chefbook/internal/domain/tip"
	"chefbook/internal/domain/user"
	"chefbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Availability() AvailabilityRepository
	Bindings() BindingRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Tips() TipRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BindingByFoodie(ctx context.Context, foodieID uuid.UUID) (*BindingSnapshot, error)
	ChefByBindingCode(ctx context.Context, code string) (*ChefSnapshot, error)
	DishSpecs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]order.DishSpec, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// Minimal snapshots for command read operations
type BindingSnapshot struct {
	FoodieID uuid.UUID
	ChefID   uuid.UUID
	Code     string
}

type ChefSnapshot struct {
	ID       uuid.UUID
	Nickname string
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     user.Role
	Nickname string
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, from, to order.Status) error
	Complete(ctx context.Context, tx db.DBTX, orderID uuid.UUID, completedAt time.Time) error
	Cancel(ctx context.Context, tx db.DBTX, orderID uuid.UUID, from order.Status, reason string) error
	SetPaymentRef(ctx context.Context, tx db.DBTX, orderID uuid.UUID, ref string) error
	MarkReviewed(ctx context.Context, tx db.DBTX, orderID uuid.UUID) error
	FindByID(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*order.Order, error)
	FindByOrderNo(ctx context.Context, tx db.DBTX, orderNo int64) (*order.Order, error)
}

type AvailabilityRepository interface {
	Reserve(ctx context.Context, tx db.DBTX, dishID uuid.UUID, date string, qty int32, maxUnits int32) error
	Release(ctx context.Context, tx db.DBTX, dishID uuid.UUID, date string, qty int32) error
	Reserved(ctx context.Context, tx db.DBTX, dishID uuid.UUID, date string) (int32, error)
}

type BindingRepository interface {
	TryInsert(ctx context.Context, tx db.DBTX, b *binding.Binding) error
	Delete(ctx context.Context, tx db.DBTX, foodieID uuid.UUID) error
	FindByFoodie(ctx context.Context, tx db.DBTX, foodieID uuid.UUID) (*binding.Binding, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rv *review.Review) (uuid.UUID, error)
	SoftDelete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcDishRating(ctx context.Context, tx db.DBTX, dishID uuid.UUID) error
	RecalcChefRating(ctx context.Context, tx db.DBTX, chefID uuid.UUID) error
}

type TipRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *tip.Tip, paymentRef string) (uuid.UUID, error)
	Settle(ctx context.Context, tx db.DBTX, tipID uuid.UUID, to tip.Status) error
	FindByID(ctx context.Context, tx db.DBTX, tipID uuid.UUID) (*TipSnapshot, error)
}

type TipSnapshot struct {
	ID          uuid.UUID
	FoodieID    uuid.UUID
	ChefID      uuid.UUID
	OrderID     *uuid.UUID
	AmountCents int64
	Status      tip.Status
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, kind, title, body string, payload []byte) error
	MarkRead(ctx context.Context, tx db.DBTX, userID, notificationID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
}
