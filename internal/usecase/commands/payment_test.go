//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"chefbook/internal/domain/order"
	"chefbook/internal/domain/tip"
	"chefbook/internal/domain/user"
	"chefbook/internal/infra/payment"
	"chefbook/internal/usecase/commands"
	"chefbook/internal/usecase/shared"
	"chefbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	store    *fakeStore
	notifier *fakeNotifier
	gateway  *fakeGateway
	cmds     commands.PaymentCommands

	foodieID uuid.UUID
	chefID   uuid.UUID
	dishID   uuid.UUID
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.notifier = &fakeNotifier{}
	s.gateway = &fakeGateway{}
	s.cmds = commands.NewPaymentUseCase(newFakeUoW(s.store), s.gateway, s.notifier)

	s.foodieID = uuid.New()
	s.chefID = uuid.New()
	s.dishID = uuid.New()
}

func (s *PaymentCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) seedOrder(status order.Status) *order.Order {
	b := builder.NewOrderBuilder().WithFoodieID(s.foodieID).WithChefID(s.chefID)
	b.DishID = s.dishID
	o := b.BuildDomainWithStatus(status)
	s.store.putOrder(o)
	return o
}

func (s *PaymentCommandsTestSuite) successNotice(o *order.Order) payment.Notice {
	return payment.Notice{
		Reference:     payment.OrderReference(o.OrderNo()),
		Outcome:       payment.OutcomeSuccess,
		AmountCents:   o.Total().Cents(),
		TransactionID: "txn-1",
		Timestamp:     time.Now().Unix(),
		Signature:     "sig",
	}
}

func (s *PaymentCommandsTestSuite) TestCreateOrderPayment() {
	s.Run("unpaid order yields an intent and records the reference", func() {
		o := s.seedOrder(order.StatusUnpaid)

		intent, err := s.cmds.CreateOrderPayment(context.Background(), s.foodieID, user.RoleFoodie, o.ID())
		s.Require().NoError(err)
		s.Equal(payment.OrderReference(o.OrderNo()), intent.Reference)
		s.Equal(o.Total().Cents(), intent.AmountCents)

		s.store.mu.Lock()
		ref := s.store.orders[o.ID()].PaymentRef()
		s.store.mu.Unlock()
		s.Equal(intent.Reference, ref)
	})

	s.Run("already paid order is not payable", func() {
		o := s.seedOrder(order.StatusPending)
		_, err := s.cmds.CreateOrderPayment(context.Background(), s.foodieID, user.RoleFoodie, o.ID())
		s.ErrorIs(err, commands.ErrOrderNotPayable)
	})

	s.Run("only the owner may pay", func() {
		o := s.seedOrder(order.StatusUnpaid)
		_, err := s.cmds.CreateOrderPayment(context.Background(), uuid.New(), user.RoleFoodie, o.ID())
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("chefs do not pay", func() {
		o := s.seedOrder(order.StatusUnpaid)
		_, err := s.cmds.CreateOrderPayment(context.Background(), s.chefID, user.RoleChef, o.ID())
		s.ErrorIs(err, commands.ErrForbidden)
	})
}

func (s *PaymentCommandsTestSuite) TestHandleCallbackOrder() {
	s.Run("success moves unpaid to pending and notifies the chef", func() {
		o := s.seedOrder(order.StatusUnpaid)

		err := s.cmds.HandleCallback(context.Background(), s.successNotice(o))
		s.Require().NoError(err)
		s.Equal(order.StatusPending, s.store.orderStatus(o.ID()))
		s.NotEmpty(s.notifier.eventsFor(s.chefID))
	})

	s.Run("duplicate delivery is acked without a second effect", func() {
		o := s.seedOrder(order.StatusUnpaid)
		notice := s.successNotice(o)

		s.Require().NoError(s.cmds.HandleCallback(context.Background(), notice))
		chefEvents := len(s.notifier.eventsFor(s.chefID))

		s.Require().NoError(s.cmds.HandleCallback(context.Background(), notice))
		s.Equal(order.StatusPending, s.store.orderStatus(o.ID()))
		s.Len(s.notifier.eventsFor(s.chefID), chefEvents)
	})

	s.Run("stale success after cancellation is swallowed", func() {
		o := s.seedOrder(order.StatusCancelled)
		s.Require().NoError(s.cmds.HandleCallback(context.Background(), s.successNotice(o)))
		s.Equal(order.StatusCancelled, s.store.orderStatus(o.ID()))
	})

	s.Run("failure cancels the order and frees capacity", func() {
		o := s.seedOrder(order.StatusUnpaid)
		date := o.DeliveryDateKey()
		s.store.mu.Lock()
		s.store.reserved[ledgerKey(s.dishID, date)] = o.Lines()[0].Quantity
		s.store.mu.Unlock()

		notice := s.successNotice(o)
		notice.Outcome = payment.OutcomeFailure
		s.Require().NoError(s.cmds.HandleCallback(context.Background(), notice))

		s.Equal(order.StatusCancelled, s.store.orderStatus(o.ID()))
		s.Equal(int32(0), s.store.reservedFor(s.dishID, date))
		s.NotEmpty(s.notifier.eventsFor(s.foodieID))
	})

	s.Run("invalid signature is rejected before any lookup", func() {
		o := s.seedOrder(order.StatusUnpaid)
		s.gateway.verifyErr = payment.ErrInvalidSignature

		err := s.cmds.HandleCallback(context.Background(), s.successNotice(o))
		s.ErrorIs(err, payment.ErrInvalidSignature)
		s.Equal(order.StatusUnpaid, s.store.orderStatus(o.ID()))

		s.gateway.verifyErr = nil
	})

	s.Run("unknown reference shapes", func() {
		cases := []string{"refund-1", "order-notanumber", "tip-notauuid", "order-999999"}
		for _, ref := range cases {
			err := s.cmds.HandleCallback(context.Background(), payment.Notice{
				Reference: ref,
				Outcome:   payment.OutcomeSuccess,
				Signature: "sig",
			})
			s.ErrorIs(err, commands.ErrUnknownReference, ref)
		}
	})
}

func (s *PaymentCommandsTestSuite) TestHandleCallbackTip() {
	seedTip := func() uuid.UUID {
		id := uuid.New()
		s.store.mu.Lock()
		s.store.tips[id] = &shared.TipSnapshot{
			ID:          id,
			FoodieID:    s.foodieID,
			ChefID:      s.chefID,
			AmountCents: 500,
			Status:      tip.StatusPending,
		}
		s.store.mu.Unlock()
		return id
	}

	s.Run("success pays the tip and notifies the chef", func() {
		tipID := seedTip()
		err := s.cmds.HandleCallback(context.Background(), payment.Notice{
			Reference: payment.TipReference(tipID.String()),
			Outcome:   payment.OutcomeSuccess,
			Signature: "sig",
		})
		s.Require().NoError(err)

		s.store.mu.Lock()
		status := s.store.tips[tipID].Status
		s.store.mu.Unlock()
		s.Equal(tip.StatusPaid, status)
		s.NotEmpty(s.notifier.eventsFor(s.chefID))
	})

	s.Run("failure marks failed without notifying", func() {
		tipID := seedTip()
		before := len(s.notifier.eventsFor(s.chefID))

		err := s.cmds.HandleCallback(context.Background(), payment.Notice{
			Reference: payment.TipReference(tipID.String()),
			Outcome:   payment.OutcomeFailure,
			Signature: "sig",
		})
		s.Require().NoError(err)

		s.store.mu.Lock()
		status := s.store.tips[tipID].Status
		s.store.mu.Unlock()
		s.Equal(tip.StatusFailed, status)
		s.Len(s.notifier.eventsFor(s.chefID), before)
	})

	s.Run("second settlement attempt is acked idempotently", func() {
		tipID := seedTip()
		notice := payment.Notice{
			Reference: payment.TipReference(tipID.String()),
			Outcome:   payment.OutcomeSuccess,
			Signature: "sig",
		}
		s.Require().NoError(s.cmds.HandleCallback(context.Background(), notice))

		notice.Outcome = payment.OutcomeFailure
		s.Require().NoError(s.cmds.HandleCallback(context.Background(), notice))

		s.store.mu.Lock()
		status := s.store.tips[tipID].Status
		s.store.mu.Unlock()
		s.Equal(tip.StatusPaid, status)
	})
}
