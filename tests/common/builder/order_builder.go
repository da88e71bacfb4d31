//go:build unit || e2e

package builder

import (
	"time"

	domorder "chefbook/internal/domain/order"
	reqdto "chefbook/internal/handler/dto/request"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/ordernum"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	FoodieID   uuid.UUID
	ChefID     uuid.UUID
	DishID     uuid.UUID
	DishName   string
	PriceCents int64
	MaxUnits   int32
	Quantity   int32
	DeliveryAt time.Time
	Address    domorder.AddressSnapshot
	Remark     string
	Now        time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &OrderBuilder{
		FoodieID:   uuid.New(),
		ChefID:     uuid.New(),
		DishID:     uuid.New(),
		DishName:   "Braised Pork Belly",
		PriceCents: 6800,
		MaxUnits:   10,
		Quantity:   1,
		DeliveryAt: time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		Address: domorder.AddressSnapshot{
			Name:   "Alice",
			Phone:  "13800000000",
			City:   "Shanghai",
			Detail: "1 Example Road",
		},
		Now: now,
	}
}

func (b *OrderBuilder) WithFoodieID(id uuid.UUID) *OrderBuilder {
	b.FoodieID = id
	return b
}

func (b *OrderBuilder) WithChefID(id uuid.UUID) *OrderBuilder {
	b.ChefID = id
	return b
}

func (b *OrderBuilder) WithQuantity(qty int32) *OrderBuilder {
	b.Quantity = qty
	return b
}

func (b *OrderBuilder) WithDeliveryAt(t time.Time) *OrderBuilder {
	b.DeliveryAt = t
	return b
}

// DishSpec freezes the builder's single dish as the factory sees it,
// active on the builder's delivery date.
func (b *OrderBuilder) DishSpec() domorder.DishSpec {
	return domorder.DishSpec{
		ID:          b.DishID,
		ChefID:      b.ChefID,
		Name:        b.DishName,
		PriceCents:  b.PriceCents,
		MaxUnits:    b.MaxUnits,
		ActiveDates: []string{domorder.DeliveryDate(b.DeliveryAt)},
		OnShelf:     true,
	}
}

func (b *OrderBuilder) Factory() *domorder.Factory {
	return domorder.NewFactory(clock.NewMockClock(b.Now), &ordernum.FixedGenerator{Numbers: []int64{100001}})
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	remark, err := domorder.NewRemark(b.Remark)
	if err != nil {
		return nil, err
	}
	specs := map[uuid.UUID]domorder.DishSpec{b.DishID: b.DishSpec()}
	reqs := []domorder.LineRequest{{DishID: b.DishID, Quantity: b.Quantity}}
	return b.Factory().CreateOrder(b.FoodieID, b.ChefID, reqs, specs, b.DeliveryAt, b.Address, remark)
}

// BuildDomainWithStatus walks the reconstructed order straight into the
// requested status without driving the state machine.
func (b *OrderBuilder) BuildDomainWithStatus(status domorder.Status) *domorder.Order {
	line := domorder.Line{
		DishID:     b.DishID,
		DishName:   b.DishName,
		PriceCents: b.PriceCents,
		Quantity:   b.Quantity,
	}
	remark, _ := domorder.NewRemark(b.Remark)
	var completedAt *time.Time
	if status == domorder.StatusCompleted {
		t := b.Now.Add(time.Hour)
		completedAt = &t
	}
	return domorder.ReconstructOrder(
		uuid.New(), 100001, b.FoodieID, b.ChefID,
		[]domorder.Line{line},
		line.Subtotal(),
		b.DeliveryAt, b.Address, remark,
		"", false, "",
		status, b.Now, b.Now, completedAt,
	)
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Lines: []reqdto.OrderLineRequest{
			{DishID: b.DishID, Quantity: b.Quantity},
		},
		DeliveryAt: b.DeliveryAt,
		Address: reqdto.AddressRequest{
			Name:   b.Address.Name,
			Phone:  b.Address.Phone,
			City:   b.Address.City,
			Detail: b.Address.Detail,
		},
		Remark: b.Remark,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	subtotal := b.PriceCents * int64(b.Quantity)
	return &queries.OrderView{
		ID:         uuid.New(),
		OrderNo:    100001,
		FoodieID:   b.FoodieID,
		ChefID:     b.ChefID,
		Status:     string(domorder.StatusUnpaid),
		TotalCents: subtotal,
		DeliveryAt: b.DeliveryAt,
		Address: queries.AddressView{
			Name:   b.Address.Name,
			Phone:  b.Address.Phone,
			City:   b.Address.City,
			Detail: b.Address.Detail,
		},
		Items: []queries.OrderItemView{
			{
				DishID:        b.DishID,
				DishName:      b.DishName,
				PriceCents:    b.PriceCents,
				Quantity:      b.Quantity,
				SubtotalCents: subtotal,
			},
		},
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:         uuid.New(),
		OrderNo:    100001,
		Status:     string(domorder.StatusPending),
		TotalCents: b.PriceCents * int64(b.Quantity),
		DeliveryAt: b.DeliveryAt,
		ItemCount:  1,
		FirstDish:  b.DishName,
		CreatedAt:  b.Now,
	}
}
