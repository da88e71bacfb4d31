package order

import (
	"time"

	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/ordernum"

	"github.com/google/uuid"
)

// DishSpec is the catalog snapshot the factory freezes lines from.
type DishSpec struct {
	ID          uuid.UUID
	ChefID      uuid.UUID
	Name        string
	Image       string
	PriceCents  int64
	MaxUnits    int32
	ActiveDates []string
	OnShelf     bool
}

func (s DishSpec) ActiveOn(date string) bool {
	for _, d := range s.ActiveDates {
		if d == date {
			return true
		}
	}
	return false
}

type LineRequest struct {
	DishID   uuid.UUID
	Quantity int32
}

type Factory struct {
	Clock   clock.Clock
	Numbers ordernum.Generator
}

func NewFactory(clk clock.Clock, numbers ordernum.Generator) *Factory {
	return &Factory{
		Clock:   clk,
		Numbers: numbers,
	}
}

// CreateOrder freezes the requested lines against their dish specs and
// produces an unpaid order. The total is computed once here and never
// recomputed from the live catalog.
func (f *Factory) CreateOrder(
	foodieID, chefID uuid.UUID,
	reqs []LineRequest,
	specs map[uuid.UUID]DishSpec,
	deliveryAt time.Time,
	address AddressSnapshot,
	remark Remark,
) (*Order, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyOrder
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	date := DeliveryDate(deliveryAt)
	lines := make([]Line, 0, len(reqs))
	total := NewMoney(0)

	for _, req := range reqs {
		if req.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		spec, ok := specs[req.DishID]
		if !ok {
			return nil, ErrDishNotOwnedByChef
		}
		if spec.ChefID != chefID {
			return nil, ErrDishNotOwnedByChef
		}
		if !spec.OnShelf {
			return nil, ErrDishNotOnShelf
		}
		if !spec.ActiveOn(date) {
			return nil, ErrInvalidDeliveryDate
		}

		line := Line{
			DishID:     spec.ID,
			DishName:   spec.Name,
			DishImage:  spec.Image,
			PriceCents: spec.PriceCents,
			Quantity:   req.Quantity,
		}
		lines = append(lines, line)
		total = total.Add(line.Subtotal())
	}

	if total.IsNegative() {
		return nil, ErrNegativeTotal
	}

	now := f.Clock.Now()
	return &Order{
		id:         uuid.New(),
		orderNo:    f.Numbers.Next(),
		foodieID:   foodieID,
		chefID:     chefID,
		lines:      lines,
		total:      total,
		deliveryAt: deliveryAt,
		address:    address,
		remark:     remark,
		status:     StatusUnpaid,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}
