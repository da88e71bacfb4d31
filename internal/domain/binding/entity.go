package binding

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode = errors.New("binding code does not resolve to a chef")
	ErrAlreadyBound = errors.New("foodie already holds an active binding")
	ErrSelfBinding  = errors.New("cannot bind to oneself")
	ErrNotBound     = errors.New("foodie has no active binding")
)

// Binding pairs a foodie with exactly one chef. Uniqueness per foodie is a
// storage-level constraint, not just an application check; the application
// check alone would race under concurrent bind attempts.
type Binding struct {
	foodieID  uuid.UUID
	chefID    uuid.UUID
	code      string
	createdAt time.Time
}

func NewBinding(foodieID, chefID uuid.UUID, code string, now time.Time) (*Binding, error) {
	if foodieID == chefID {
		return nil, ErrSelfBinding
	}
	return &Binding{
		foodieID:  foodieID,
		chefID:    chefID,
		code:      code,
		createdAt: now,
	}, nil
}

func ReconstructBinding(foodieID, chefID uuid.UUID, code string, createdAt time.Time) *Binding {
	return &Binding{
		foodieID:  foodieID,
		chefID:    chefID,
		code:      code,
		createdAt: createdAt,
	}
}

func (b *Binding) FoodieID() uuid.UUID  { return b.foodieID }
func (b *Binding) ChefID() uuid.UUID    { return b.chefID }
func (b *Binding) Code() string         { return b.code }
func (b *Binding) CreatedAt() time.Time { return b.createdAt }
