package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxRemarkLength = 500
	// DateLayout is the calendar-date key used by the capacity ledger.
	DateLayout = "2006-01-02"
)

var ErrRemarkTooLong = errors.New("remark too long")

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulQty(qty int32) Money {
	return Money{cents: m.cents * int64(qty)}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

type Remark struct {
	value string
}

func NewRemark(s string) (Remark, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxRemarkLength {
		return Remark{}, ErrRemarkTooLong
	}
	return Remark{value: s}, nil
}

func (r Remark) String() string { return r.value }
func (r Remark) IsEmpty() bool  { return r.value == "" }

// AddressSnapshot is frozen into the order at creation time so that later
// edits to the foodie's address book never rewrite order history.
type AddressSnapshot struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Detail   string `json:"detail"`
}

var ErrIncompleteAddress = errors.New("address snapshot requires name, phone and detail")

func (a AddressSnapshot) Validate() error {
	if strings.TrimSpace(a.Name) == "" ||
		strings.TrimSpace(a.Phone) == "" ||
		strings.TrimSpace(a.Detail) == "" {
		return ErrIncompleteAddress
	}
	return nil
}

// Line is a frozen snapshot of a dish at order time. It is never re-read
// from the live catalog; price and name edits must not alter history.
type Line struct {
	DishID     uuid.UUID
	DishName   string
	DishImage  string
	PriceCents int64
	Quantity   int32
}

func (l Line) Subtotal() Money {
	return NewMoney(l.PriceCents).MulQty(l.Quantity)
}

// DeliveryDate is the calendar-date key a delivery timestamp reserves
// capacity under.
func DeliveryDate(deliveryAt time.Time) string {
	return deliveryAt.Format(DateLayout)
}
