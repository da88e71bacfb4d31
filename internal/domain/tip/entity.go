package tip

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed:
		return true
	default:
		return false
	}
}

var (
	ErrInvalidAmount = errors.New("tip amount must be positive")
	ErrSelfTipping   = errors.New("cannot tip oneself")
)

// Tip starts pending and is settled by the payment callback. Only paid
// tips count toward chef earnings.
type Tip struct {
	id        uuid.UUID
	foodieID  uuid.UUID
	chefID    uuid.UUID
	orderID   *uuid.UUID
	amount    int64
	message   string
	status    Status
	createdAt time.Time
}

func NewTip(foodieID, chefID uuid.UUID, orderID *uuid.UUID, amountCents int64, message string, now time.Time) (*Tip, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if foodieID == chefID {
		return nil, ErrSelfTipping
	}
	return &Tip{
		id:        uuid.New(),
		foodieID:  foodieID,
		chefID:    chefID,
		orderID:   orderID,
		amount:    amountCents,
		message:   message,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func (t *Tip) ID() uuid.UUID        { return t.id }
func (t *Tip) FoodieID() uuid.UUID  { return t.foodieID }
func (t *Tip) ChefID() uuid.UUID    { return t.chefID }
func (t *Tip) OrderID() *uuid.UUID  { return t.orderID }
func (t *Tip) AmountCents() int64   { return t.amount }
func (t *Tip) Message() string      { return t.message }
func (t *Tip) Status() Status       { return t.status }
func (t *Tip) CreatedAt() time.Time { return t.createdAt }
