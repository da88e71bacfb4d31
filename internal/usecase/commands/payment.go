package commands

import (
	"context"
	"log/slog"
	"strconv"

	"chefbook/internal/domain/order"
	"chefbook/internal/domain/tip"
	"chefbook/internal/domain/user"
	"chefbook/internal/infra"
	"chefbook/internal/infra/payment"
	"chefbook/internal/pkg/errs"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotPayable  = errs.New("order is not awaiting payment")
	ErrUnknownReference = errs.New("payment reference does not resolve")
)

// PaymentGateway is the external collaborator. Intent creation and notice
// verification are its whole surface; the wire protocol stays outside.
type PaymentGateway interface {
	CreateIntent(reference string, amountCents int64) payment.Intent
	VerifyNotice(n payment.Notice) error
}

type PaymentCommands interface {
	CreateOrderPayment(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) (*payment.Intent, error)
	HandleCallback(ctx context.Context, notice payment.Notice) error
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	notifier Notifier
}

func NewPaymentUseCase(uow shared.UnitOfWork, gateway PaymentGateway, notifier Notifier) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		notifier: notifier,
	}
}

func (uc *paymentUseCaseImpl) CreateOrderPayment(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) (*payment.Intent, error) {
	if actorRole != user.RoleFoodie {
		return nil, ErrForbidden
	}

	var intent payment.Intent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := findOrder(ctx, tx, orderID)
		if derr != nil {
			return derr
		}
		if !o.IsOwnedByFoodie(actorID) {
			return ErrForbidden
		}
		if o.Status() != order.StatusUnpaid {
			return ErrOrderNotPayable
		}

		ref := payment.OrderReference(o.OrderNo())
		if derr = tx.Orders().SetPaymentRef(ctx, tx.DB(), orderID, ref); derr != nil {
			return derr
		}

		intent = uc.gateway.CreateIntent(ref, o.Total().Cents())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// HandleCallback reconciles a gateway notice. The signature is checked
// before anything else; a bad notice leaves no trace beyond a log line.
// Duplicate deliveries land on the conditional update's zero-rows path and
// are acked as if they were the first.
func (uc *paymentUseCaseImpl) HandleCallback(ctx context.Context, notice payment.Notice) error {
	if err := uc.gateway.VerifyNotice(notice); err != nil {
		slog.Warn("rejected payment callback",
			"reference", notice.Reference,
			"error", err.Error())
		return err
	}

	kind, value := payment.ParseReference(notice.Reference)
	switch kind {
	case payment.RefOrder:
		orderNo, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errs.Mark(err, ErrUnknownReference)
		}
		return uc.settleOrder(ctx, orderNo, notice)
	case payment.RefTip:
		tipID, err := uuid.Parse(value)
		if err != nil {
			return errs.Mark(err, ErrUnknownReference)
		}
		return uc.settleTip(ctx, tipID, notice)
	default:
		slog.Warn("payment callback with unroutable reference", "reference", notice.Reference)
		return ErrUnknownReference
	}
}

func (uc *paymentUseCaseImpl) settleOrder(ctx context.Context, orderNo int64, notice payment.Notice) error {
	var notifyTarget uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := tx.Orders().FindByOrderNo(ctx, tx.DB(), orderNo)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrUnknownReference)
			}
			return derr
		}

		if notice.Outcome == payment.OutcomeSuccess {
			derr = tx.Orders().UpdateStatus(ctx, tx.DB(), o.ID(), order.StatusUnpaid, order.StatusPending)
			if derr != nil {
				if infra.IsKind(derr, infra.KindConflict) {
					// Duplicate or stale delivery; the first one won.
					return nil
				}
				return derr
			}
			notifyTarget = o.ChefID()
			return tx.Notifications().Create(ctx, tx.DB(), notifyTarget,
				"order_paid", "Order paid", "A paid order is waiting for acceptance", nil)
		}

		derr = tx.Orders().Cancel(ctx, tx.DB(), o.ID(), order.StatusUnpaid, "payment failed")
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return nil
			}
			return derr
		}
		releaseLines(ctx, tx, o.Lines(), o.DeliveryDateKey())
		notifyTarget = o.FoodieID()
		return tx.Notifications().Create(ctx, tx.DB(), notifyTarget,
			"payment_failed", "Payment failed", "Your order was cancelled", nil)
	})
	if err != nil {
		return err
	}

	uc.notifySettled(ctx, notifyTarget, notice.Outcome)
	return nil
}

func (uc *paymentUseCaseImpl) settleTip(ctx context.Context, tipID uuid.UUID, notice payment.Notice) error {
	var notifyTarget uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Tips().FindByID(ctx, tx.DB(), tipID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrUnknownReference)
			}
			return derr
		}

		to := tip.StatusPaid
		if notice.Outcome == payment.OutcomeFailure {
			to = tip.StatusFailed
		}

		if derr = tx.Tips().Settle(ctx, tx.DB(), tipID, to); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return nil
			}
			return derr
		}

		if to == tip.StatusPaid {
			notifyTarget = snap.ChefID
			return tx.Notifications().Create(ctx, tx.DB(), notifyTarget,
				"tip_received", "Tip received", "", nil)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if notifyTarget != uuid.Nil {
		publishEvent(ctx, uc.notifier, notifyTarget, "tip_received", "Tip received")
	}
	return nil
}

func (uc *paymentUseCaseImpl) notifySettled(ctx context.Context, userID uuid.UUID, outcome string) {
	if userID == uuid.Nil {
		return
	}
	if outcome == payment.OutcomeSuccess {
		publishEvent(ctx, uc.notifier, userID, "order_paid", "Order paid")
		return
	}
	publishEvent(ctx, uc.notifier, userID, "payment_failed", "Payment failed")
}
