//go:build unit

package order_test

import (
	"testing"
	"time"

	"chefbook/internal/domain/order"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/ordernum"
	"chefbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreateOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		o, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, o)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, int64(100001), o.OrderNo())
		assert.Equal(t, order.StatusUnpaid, o.Status())
		assert.Equal(t, b.FoodieID, o.FoodieID())
		assert.Equal(t, b.ChefID, o.ChefID())
		assert.Len(t, o.Lines(), 1)
		assert.Equal(t, int64(6800), o.Total().Cents())
		assert.Equal(t, "2025-06-02", o.DeliveryDateKey())
		assert.False(t, o.Reviewed())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("total is the sum of frozen line subtotals", func(t *testing.T) {
		foodieID := uuid.New()
		chefID := uuid.New()
		porkID := uuid.New()
		soupID := uuid.New()
		deliveryAt := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)

		specs := map[uuid.UUID]order.DishSpec{
			porkID: {
				ID: porkID, ChefID: chefID, Name: "Braised Pork Belly",
				PriceCents: 6800, MaxUnits: 10,
				ActiveDates: []string{"2025-06-02"}, OnShelf: true,
			},
			soupID: {
				ID: soupID, ChefID: chefID, Name: "Tomato Egg Soup",
				PriceCents: 3000, MaxUnits: 20,
				ActiveDates: []string{"2025-06-02"}, OnShelf: true,
			},
		}
		reqs := []order.LineRequest{
			{DishID: porkID, Quantity: 2},
			{DishID: soupID, Quantity: 1},
		}

		f := order.NewFactory(
			clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
			&ordernum.FixedGenerator{Numbers: []int64{42}},
		)
		o, err := f.CreateOrder(foodieID, chefID, reqs, specs, deliveryAt, validAddress(), order.Remark{})
		require.NoError(t, err)

		// 68.00 * 2 + 30.00 * 1 = 166.00
		assert.Equal(t, int64(16600), o.Total().Cents())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, int64(42), o.OrderNo())
	})

	t.Run("later catalog edits never touch the frozen line", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		spec := b.DishSpec()
		specs := map[uuid.UUID]order.DishSpec{b.DishID: spec}
		reqs := []order.LineRequest{{DishID: b.DishID, Quantity: 1}}

		o, err := b.Factory().CreateOrder(b.FoodieID, b.ChefID, reqs, specs, b.DeliveryAt, b.Address, order.Remark{})
		require.NoError(t, err)

		spec.PriceCents = 9900
		spec.Name = "Renamed Dish"
		specs[b.DishID] = spec

		assert.Equal(t, int64(6800), o.Lines()[0].PriceCents)
		assert.Equal(t, "Braised Pork Belly", o.Lines()[0].DishName)
		assert.Equal(t, int64(6800), o.Total().Cents())
	})

	t.Run("validation failures", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		spec := b.DishSpec()

		cases := []struct {
			name   string
			reqs   []order.LineRequest
			mutate func(*order.DishSpec)
			errIs  error
		}{
			{
				name:  "empty order",
				reqs:  nil,
				errIs: order.ErrEmptyOrder,
			},
			{
				name:  "zero quantity",
				reqs:  []order.LineRequest{{DishID: b.DishID, Quantity: 0}},
				errIs: order.ErrInvalidQuantity,
			},
			{
				name:  "negative quantity",
				reqs:  []order.LineRequest{{DishID: b.DishID, Quantity: -1}},
				errIs: order.ErrInvalidQuantity,
			},
			{
				name:  "unknown dish",
				reqs:  []order.LineRequest{{DishID: uuid.New(), Quantity: 1}},
				errIs: order.ErrDishNotOwnedByChef,
			},
			{
				name:   "dish owned by a different chef",
				reqs:   []order.LineRequest{{DishID: b.DishID, Quantity: 1}},
				mutate: func(s *order.DishSpec) { s.ChefID = uuid.New() },
				errIs:  order.ErrDishNotOwnedByChef,
			},
			{
				name:   "dish off shelf",
				reqs:   []order.LineRequest{{DishID: b.DishID, Quantity: 1}},
				mutate: func(s *order.DishSpec) { s.OnShelf = false },
				errIs:  order.ErrDishNotOnShelf,
			},
			{
				name:   "delivery date not active",
				reqs:   []order.LineRequest{{DishID: b.DishID, Quantity: 1}},
				mutate: func(s *order.DishSpec) { s.ActiveDates = []string{"2025-06-09"} },
				errIs:  order.ErrInvalidDeliveryDate,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				s := spec
				if c.mutate != nil {
					c.mutate(&s)
				}
				specs := map[uuid.UUID]order.DishSpec{b.DishID: s}
				_, err := b.Factory().CreateOrder(b.FoodieID, b.ChefID, c.reqs, specs, b.DeliveryAt, b.Address, order.Remark{})
				assert.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("incomplete address", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		b.Address.Phone = ""
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, order.ErrIncompleteAddress)
	})
}

func TestReviewEligible(t *testing.T) {
	t.Run("completed and unreviewed", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomainWithStatus(order.StatusCompleted)
		assert.NoError(t, o.ReviewEligible())
	})

	t.Run("not completed", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomainWithStatus(order.StatusDelivering)
		assert.ErrorIs(t, o.ReviewEligible(), order.ErrOrderNotCompleted)
	})
}

func TestMoney(t *testing.T) {
	assert.Equal(t, int64(13600), order.NewMoney(6800).MulQty(2).Cents())
	assert.Equal(t, int64(9800), order.NewMoney(6800).Add(order.NewMoney(3000)).Cents())
	assert.True(t, order.NewMoney(-1).IsNegative())
	assert.False(t, order.NewMoney(0).IsNegative())
}

func validAddress() order.AddressSnapshot {
	return order.AddressSnapshot{
		Name:   "Alice",
		Phone:  "13800000000",
		Detail: "1 Example Road",
	}
}
