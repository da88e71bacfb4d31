package commands

import (
	"context"
	"log/slog"
	"time"

	"chefbook/internal/domain/order"
	"chefbook/internal/domain/user"
	"chefbook/internal/infra"
	"chefbook/internal/pkg/errs"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrForbidden            = errs.New("actor may not perform this operation")
	ErrNotBound             = errs.New("foodie has no active binding")
	ErrDishNotFound         = errs.New("dish not found")
	ErrDishSoldOut          = errs.New("dish sold out for the requested date")
	ErrOrderNotFound        = errs.New("order not found")
	ErrOrderNotCancellable  = errs.New("order is not cancellable")
	ErrCancelReasonRequired = errs.New("cancel reason is required")
)

type CreateOrderRequest struct {
	Lines      []order.LineRequest
	DeliveryAt time.Time
	Address    order.AddressSnapshot
	Remark     string
}

type CreateOrderResult struct {
	OrderID    uuid.UUID
	OrderNo    int64
	TotalCents int64
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, actorID uuid.UUID, actorRole user.Role, req CreateOrderRequest) (*CreateOrderResult, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID, reason string) error
	Accept(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) error
	Reject(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID, reason string) error
	MarkCooking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) error
	MarkDelivering(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) error
	ConfirmReceipt(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) error
}

type orderUseCaseImpl struct {
	uow      shared.UnitOfWork
	factory  *order.Factory
	notifier Notifier
}

func NewOrderUseCase(uow shared.UnitOfWork, factory *order.Factory, notifier Notifier) OrderCommands {
	return &orderUseCaseImpl{
		uow:      uow,
		factory:  factory,
		notifier: notifier,
	}
}

func (uc *orderUseCaseImpl) CreateOrder(ctx context.Context, actorID uuid.UUID, actorRole user.Role, req CreateOrderRequest) (*CreateOrderResult, error) {
	if actorRole != user.RoleFoodie {
		return nil, ErrForbidden
	}

	remark, err := order.NewRemark(req.Remark)
	if err != nil {
		return nil, err
	}

	var (
		result CreateOrderResult
		chefID uuid.UUID
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Reads().BindingByFoodie(ctx, actorID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrNotBound)
			}
			return derr
		}
		chefID = b.ChefID

		ids := make([]uuid.UUID, 0, len(req.Lines))
		for _, line := range req.Lines {
			ids = append(ids, line.DishID)
		}
		specs, derr := tx.Reads().DishSpecs(ctx, ids)
		if derr != nil {
			return derr
		}
		for _, line := range req.Lines {
			if _, ok := specs[line.DishID]; !ok {
				return ErrDishNotFound
			}
		}

		o, derr := uc.factory.CreateOrder(actorID, chefID, req.Lines, specs, req.DeliveryAt, req.Address, remark)
		if derr != nil {
			return derr
		}

		if derr = reserveLines(ctx, tx, o); derr != nil {
			return derr
		}

		if _, derr = tx.Orders().Create(ctx, tx.DB(), o); derr != nil {
			return derr
		}

		if derr = tx.Notifications().Create(ctx, tx.DB(), chefID,
			"order_created", "New order", "A new order is waiting for payment", nil); derr != nil {
			return derr
		}

		result = CreateOrderResult{
			OrderID:    o.ID(),
			OrderNo:    o.OrderNo(),
			TotalCents: o.Total().Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifyUser(ctx, chefID, "order_created", "New order")
	return &result, nil
}

// reserveLines admits every line or none. The explicit rollback of already
// admitted lines keeps the all-or-nothing contract independent of the
// surrounding transaction.
func reserveLines(ctx context.Context, tx shared.Tx, o *order.Order) error {
	date := o.DeliveryDateKey()
	specs := o.Lines()

	reserved := make([]order.Line, 0, len(specs))
	for _, line := range specs {
		max, err := maxUnitsFor(ctx, tx, line.DishID)
		if err != nil {
			releaseLines(ctx, tx, reserved, date)
			return err
		}
		err = tx.Availability().Reserve(ctx, tx.DB(), line.DishID, date, line.Quantity, max)
		if err != nil {
			releaseLines(ctx, tx, reserved, date)
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrDishSoldOut)
			}
			return err
		}
		reserved = append(reserved, line)
	}
	return nil
}

func maxUnitsFor(ctx context.Context, tx shared.Tx, dishID uuid.UUID) (int32, error) {
	specs, err := tx.Reads().DishSpecs(ctx, []uuid.UUID{dishID})
	if err != nil {
		return 0, err
	}
	spec, ok := specs[dishID]
	if !ok {
		return 0, ErrDishNotFound
	}
	return spec.MaxUnits, nil
}

func releaseLines(ctx context.Context, tx shared.Tx, lines []order.Line, date string) {
	for _, line := range lines {
		if err := tx.Availability().Release(ctx, tx.DB(), line.DishID, date, line.Quantity); err != nil {
			slog.Warn("failed to release reserved capacity",
				"dish_id", line.DishID.String(),
				"date", date,
				"error", err.Error())
		}
	}
}

func (uc *orderUseCaseImpl) Cancel(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID, reason string) error {
	var notifyTarget uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := findOrder(ctx, tx, orderID)
		if derr != nil {
			return derr
		}
		if derr = checkOwnership(o, actorID, actorRole); derr != nil {
			return derr
		}

		if actorRole == user.RoleFoodie {
			if !order.Cancellable(o.Status()) {
				return ErrOrderNotCancellable
			}
			notifyTarget = o.ChefID()
		} else {
			// Chef-side cancel is a reject and only ever leaves pending.
			if o.Status() != order.StatusPending {
				return ErrOrderNotCancellable
			}
			if reason == "" {
				return ErrCancelReasonRequired
			}
			notifyTarget = o.FoodieID()
		}

		if derr = order.CanTransition(o.Status(), order.StatusCancelled, order.TriggerFor(actorRole)); derr != nil {
			return derr
		}

		if derr = tx.Orders().Cancel(ctx, tx.DB(), orderID, o.Status(), reason); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrOrderNotCancellable)
			}
			return derr
		}

		releaseLines(ctx, tx, o.Lines(), o.DeliveryDateKey())

		return tx.Notifications().Create(ctx, tx.DB(), notifyTarget,
			"order_cancelled", "Order cancelled", reason, nil)
	})
	if err != nil {
		return err
	}

	uc.notifyUser(ctx, notifyTarget, "order_cancelled", "Order cancelled")
	return nil
}

func (uc *orderUseCaseImpl) Accept(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) error {
	return uc.transition(ctx, actorID, actorRole, orderID,
		order.StatusPending, order.StatusAccepted,
		"order_accepted", "Order accepted")
}

func (uc *orderUseCaseImpl) Reject(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID, reason string) error {
	if actorRole != user.RoleChef {
		return ErrForbidden
	}
	return uc.Cancel(ctx, actorID, actorRole, orderID, reason)
}

func (uc *orderUseCaseImpl) MarkCooking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) error {
	return uc.transition(ctx, actorID, actorRole, orderID,
		order.StatusAccepted, order.StatusCooking,
		"order_cooking", "Your order is being prepared")
}

func (uc *orderUseCaseImpl) MarkDelivering(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) error {
	return uc.transition(ctx, actorID, actorRole, orderID,
		order.StatusCooking, order.StatusDelivering,
		"order_delivering", "Your order is on its way")
}

func (uc *orderUseCaseImpl) ConfirmReceipt(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) error {
	var notifyTarget uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := findOrder(ctx, tx, orderID)
		if derr != nil {
			return derr
		}
		if derr = checkOwnership(o, actorID, actorRole); derr != nil {
			return derr
		}
		if derr = order.CanTransition(o.Status(), order.StatusCompleted, order.TriggerFor(actorRole)); derr != nil {
			return derr
		}

		if derr = tx.Orders().Complete(ctx, tx.DB(), orderID, uc.factory.Clock.Now()); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, order.ErrInvalidStatusTransition)
			}
			return derr
		}

		notifyTarget = o.ChefID()
		return tx.Notifications().Create(ctx, tx.DB(), notifyTarget,
			"order_completed", "Order completed", "The foodie confirmed receipt", nil)
	})
	if err != nil {
		return err
	}

	uc.notifyUser(ctx, notifyTarget, "order_completed", "Order completed")
	return nil
}

// transition drives a single-edge chef move. The conditional update keyed
// on the expected current status is what serializes concurrent drivers; the
// state machine check picks the right error before touching storage.
func (uc *orderUseCaseImpl) transition(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID, from, to order.Status, kind, title string) error {
	var notifyTarget uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := findOrder(ctx, tx, orderID)
		if derr != nil {
			return derr
		}
		if derr = checkOwnership(o, actorID, actorRole); derr != nil {
			return derr
		}
		if derr = order.CanTransition(o.Status(), to, order.TriggerFor(actorRole)); derr != nil {
			return derr
		}

		if derr = tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, from, to); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, order.ErrInvalidStatusTransition)
			}
			return derr
		}

		notifyTarget = o.FoodieID()
		return tx.Notifications().Create(ctx, tx.DB(), notifyTarget, kind, title, "", nil)
	})
	if err != nil {
		return err
	}

	uc.notifyUser(ctx, notifyTarget, kind, title)
	return nil
}

func findOrder(ctx context.Context, tx shared.Tx, orderID uuid.UUID) (*order.Order, error) {
	o, err := tx.Orders().FindByID(ctx, tx.DB(), orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}
	return o, nil
}

func checkOwnership(o *order.Order, actorID uuid.UUID, actorRole user.Role) error {
	if actorRole == user.RoleChef {
		if !o.IsOwnedByChef(actorID) {
			return ErrForbidden
		}
		return nil
	}
	if !o.IsOwnedByFoodie(actorID) {
		return ErrForbidden
	}
	return nil
}

func (uc *orderUseCaseImpl) notifyUser(ctx context.Context, userID uuid.UUID, kind, title string) {
	publishEvent(ctx, uc.notifier, userID, kind, title)
}
