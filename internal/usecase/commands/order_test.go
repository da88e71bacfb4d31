//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"chefbook/internal/domain/binding"
	"chefbook/internal/domain/order"
	"chefbook/internal/domain/user"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/ordernum"
	"chefbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	store    *fakeStore
	notifier *fakeNotifier
	cmds     commands.OrderCommands

	foodieID uuid.UUID
	chefID   uuid.UUID
	dishID   uuid.UUID
	now      time.Time
	delivery time.Time
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.notifier = &fakeNotifier{}
	s.foodieID = uuid.New()
	s.chefID = uuid.New()
	s.dishID = uuid.New()
	s.now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.delivery = time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)

	factory := order.NewFactory(clock.NewMockClock(s.now), &ordernum.FixedGenerator{})
	s.cmds = commands.NewOrderUseCase(newFakeUoW(s.store), factory, s.notifier)

	b, err := binding.NewBinding(s.foodieID, s.chefID, "a1b2c3d4", s.now)
	s.Require().NoError(err)
	s.store.bindings[s.foodieID] = b

	s.store.dishSpecs[s.dishID] = order.DishSpec{
		ID:          s.dishID,
		ChefID:      s.chefID,
		Name:        "Braised Pork Belly",
		PriceCents:  6800,
		MaxUnits:    5,
		ActiveDates: []string{"2025-06-02"},
		OnShelf:     true,
	}
}

func (s *OrderCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) createRequest(qty int32) commands.CreateOrderRequest {
	return commands.CreateOrderRequest{
		Lines:      []order.LineRequest{{DishID: s.dishID, Quantity: qty}},
		DeliveryAt: s.delivery,
		Address: order.AddressSnapshot{
			Name:   "Alice",
			Phone:  "13800000000",
			Detail: "1 Example Road",
		},
	}
}

func (s *OrderCommandsTestSuite) TestCreateOrder() {
	s.Run("success reserves capacity and notifies the chef", func() {
		result, err := s.cmds.CreateOrder(context.Background(), s.foodieID, user.RoleFoodie, s.createRequest(2))
		s.Require().NoError(err)
		s.Require().NotNil(result)

		s.Equal(int64(13600), result.TotalCents)
		s.Equal(order.StatusUnpaid, s.store.orderStatus(result.OrderID))
		s.Equal(int32(2), s.store.reservedFor(s.dishID, "2025-06-02"))
		s.NotEmpty(s.notifier.eventsFor(s.chefID))
	})

	s.Run("chef cannot place orders", func() {
		_, err := s.cmds.CreateOrder(context.Background(), s.chefID, user.RoleChef, s.createRequest(1))
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("unbound foodie is rejected", func() {
		_, err := s.cmds.CreateOrder(context.Background(), uuid.New(), user.RoleFoodie, s.createRequest(1))
		s.ErrorIs(err, commands.ErrNotBound)
	})

	s.Run("unknown dish", func() {
		req := s.createRequest(1)
		req.Lines[0].DishID = uuid.New()
		_, err := s.cmds.CreateOrder(context.Background(), s.foodieID, user.RoleFoodie, req)
		s.ErrorIs(err, commands.ErrDishNotFound)
	})

	s.Run("quantity beyond max units is sold out", func() {
		_, err := s.cmds.CreateOrder(context.Background(), s.foodieID, user.RoleFoodie, s.createRequest(6))
		s.ErrorIs(err, commands.ErrDishSoldOut)
		s.Equal(int32(0), s.store.reservedFor(s.dishID, "2025-06-02"))
	})

	s.Run("sold out leaves no partial reservation across lines", func() {
		secondDish := uuid.New()
		s.store.dishSpecs[secondDish] = order.DishSpec{
			ID:          secondDish,
			ChefID:      s.chefID,
			Name:        "Tomato Egg Soup",
			PriceCents:  3000,
			MaxUnits:    0,
			ActiveDates: []string{"2025-06-02"},
			OnShelf:     true,
		}
		req := s.createRequest(1)
		req.Lines = append(req.Lines, order.LineRequest{DishID: secondDish, Quantity: 1})

		_, err := s.cmds.CreateOrder(context.Background(), s.foodieID, user.RoleFoodie, req)
		s.ErrorIs(err, commands.ErrDishSoldOut)
		s.Equal(int32(0), s.store.reservedFor(s.dishID, "2025-06-02"))
		s.Equal(int32(0), s.store.reservedFor(secondDish, "2025-06-02"))
	})

	s.Run("delivery date outside active dates", func() {
		req := s.createRequest(1)
		req.DeliveryAt = time.Date(2025, 6, 9, 18, 0, 0, 0, time.UTC)
		_, err := s.cmds.CreateOrder(context.Background(), s.foodieID, user.RoleFoodie, req)
		s.ErrorIs(err, order.ErrInvalidDeliveryDate)
	})
}

// Concurrent admission against a capacity of 5: exactly 5 single-unit
// orders win, the rest see sold out, and the ledger never overshoots.
func (s *OrderCommandsTestSuite) TestCreateOrderConcurrentCapacity() {
	const attempts = 20
	var wg sync.WaitGroup
	errsCh := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.cmds.CreateOrder(context.Background(), s.foodieID, user.RoleFoodie, s.createRequest(1))
			errsCh <- err
		}()
	}
	wg.Wait()
	close(errsCh)

	var wins, soldOut int
	for err := range errsCh {
		switch {
		case err == nil:
			wins++
		default:
			s.ErrorIs(err, commands.ErrDishSoldOut)
			soldOut++
		}
	}

	s.Equal(5, wins)
	s.Equal(attempts-5, soldOut)
	s.Equal(int32(5), s.store.reservedFor(s.dishID, "2025-06-02"))
}

func (s *OrderCommandsTestSuite) placeOrder(qty int32) uuid.UUID {
	result, err := s.cmds.CreateOrder(context.Background(), s.foodieID, user.RoleFoodie, s.createRequest(qty))
	s.Require().NoError(err)
	return result.OrderID
}

func (s *OrderCommandsTestSuite) forceStatus(orderID uuid.UUID, status order.Status) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.orders[orderID] = withOrderStatus(s.store.orders[orderID], status, "", nil)
}

func (s *OrderCommandsTestSuite) TestCancel() {
	s.Run("foodie cancels an unpaid order and capacity returns", func() {
		orderID := s.placeOrder(2)
		s.Equal(int32(2), s.store.reservedFor(s.dishID, "2025-06-02"))

		err := s.cmds.Cancel(context.Background(), s.foodieID, user.RoleFoodie, orderID, "changed my mind")
		s.Require().NoError(err)
		s.Equal(order.StatusCancelled, s.store.orderStatus(orderID))
		s.Equal(int32(0), s.store.reservedFor(s.dishID, "2025-06-02"))
	})

	s.Run("strangers cannot cancel", func() {
		orderID := s.placeOrder(1)
		err := s.cmds.Cancel(context.Background(), uuid.New(), user.RoleFoodie, orderID, "")
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("cooking orders are no longer cancellable", func() {
		orderID := s.placeOrder(1)
		s.forceStatus(orderID, order.StatusCooking)

		err := s.cmds.Cancel(context.Background(), s.foodieID, user.RoleFoodie, orderID, "")
		s.ErrorIs(err, commands.ErrOrderNotCancellable)
		s.Equal(order.StatusCooking, s.store.orderStatus(orderID))
	})

	s.Run("second cancel is a conflict, not a silent success", func() {
		orderID := s.placeOrder(1)
		s.Require().NoError(s.cmds.Cancel(context.Background(), s.foodieID, user.RoleFoodie, orderID, ""))

		err := s.cmds.Cancel(context.Background(), s.foodieID, user.RoleFoodie, orderID, "")
		s.ErrorIs(err, commands.ErrOrderNotCancellable)
	})

	s.Run("unknown order", func() {
		err := s.cmds.Cancel(context.Background(), s.foodieID, user.RoleFoodie, uuid.New(), "")
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})
}

func (s *OrderCommandsTestSuite) TestReject() {
	s.Run("chef rejects a pending order with a reason", func() {
		orderID := s.placeOrder(1)
		s.forceStatus(orderID, order.StatusPending)

		err := s.cmds.Reject(context.Background(), s.chefID, user.RoleChef, orderID, "out of ingredients")
		s.Require().NoError(err)
		s.Equal(order.StatusCancelled, s.store.orderStatus(orderID))
		s.NotEmpty(s.notifier.eventsFor(s.foodieID))
	})

	s.Run("reason is mandatory", func() {
		orderID := s.placeOrder(1)
		s.forceStatus(orderID, order.StatusPending)

		err := s.cmds.Reject(context.Background(), s.chefID, user.RoleChef, orderID, "")
		s.ErrorIs(err, commands.ErrCancelReasonRequired)
	})

	s.Run("only pending orders can be rejected", func() {
		orderID := s.placeOrder(1)
		s.forceStatus(orderID, order.StatusAccepted)

		err := s.cmds.Reject(context.Background(), s.chefID, user.RoleChef, orderID, "too late")
		s.ErrorIs(err, commands.ErrOrderNotCancellable)
	})

	s.Run("foodies cannot reject", func() {
		orderID := s.placeOrder(1)
		err := s.cmds.Reject(context.Background(), s.foodieID, user.RoleFoodie, orderID, "nope")
		s.ErrorIs(err, commands.ErrForbidden)
	})
}

func (s *OrderCommandsTestSuite) TestFulfillmentFlow() {
	ctx := context.Background()

	orderID := s.placeOrder(1)
	s.forceStatus(orderID, order.StatusPending)

	s.Require().NoError(s.cmds.Accept(ctx, s.chefID, user.RoleChef, orderID))
	s.Equal(order.StatusAccepted, s.store.orderStatus(orderID))

	s.Require().NoError(s.cmds.MarkCooking(ctx, s.chefID, user.RoleChef, orderID))
	s.Equal(order.StatusCooking, s.store.orderStatus(orderID))

	s.Require().NoError(s.cmds.MarkDelivering(ctx, s.chefID, user.RoleChef, orderID))
	s.Equal(order.StatusDelivering, s.store.orderStatus(orderID))

	s.Require().NoError(s.cmds.ConfirmReceipt(ctx, s.foodieID, user.RoleFoodie, orderID))
	s.Equal(order.StatusCompleted, s.store.orderStatus(orderID))

	s.store.mu.Lock()
	completed := s.store.orders[orderID].CompletedAt()
	s.store.mu.Unlock()
	s.Require().NotNil(completed)
	s.Equal(s.now, *completed)
}

func (s *OrderCommandsTestSuite) TestTransitionGuards() {
	ctx := context.Background()

	s.Run("accept out of pending is invalid", func() {
		orderID := s.placeOrder(1)
		err := s.cmds.Accept(ctx, s.chefID, user.RoleChef, orderID)
		s.ErrorIs(err, order.ErrInvalidStatusTransition)
	})

	s.Run("foodie cannot drive chef-side transitions", func() {
		orderID := s.placeOrder(1)
		s.forceStatus(orderID, order.StatusPending)
		err := s.cmds.Accept(ctx, s.foodieID, user.RoleFoodie, orderID)
		s.ErrorIs(err, order.ErrForbiddenTransition)
	})

	s.Run("chef cannot confirm receipt", func() {
		orderID := s.placeOrder(1)
		s.forceStatus(orderID, order.StatusDelivering)
		err := s.cmds.ConfirmReceipt(ctx, s.chefID, user.RoleChef, orderID)
		s.ErrorIs(err, order.ErrForbiddenTransition)
	})

	s.Run("double accept conflicts once", func() {
		orderID := s.placeOrder(1)
		s.forceStatus(orderID, order.StatusPending)
		s.Require().NoError(s.cmds.Accept(ctx, s.chefID, user.RoleChef, orderID))

		err := s.cmds.Accept(ctx, s.chefID, user.RoleChef, orderID)
		s.ErrorIs(err, order.ErrInvalidStatusTransition)
	})
}
