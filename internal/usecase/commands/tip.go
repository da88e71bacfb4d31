package commands

import (
	"context"

	domtip "chefbook/internal/domain/tip"
	"chefbook/internal/domain/user"
	"chefbook/internal/infra/payment"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateTipRequest struct {
	ChefID      uuid.UUID
	AmountCents int64
	Message     string
	OrderID     *uuid.UUID
}

type CreateTipResult struct {
	TipID  uuid.UUID
	Intent payment.Intent
}

type TipCommands interface {
	CreateTip(ctx context.Context, actorID uuid.UUID, actorRole user.Role, req CreateTipRequest) (*CreateTipResult, error)
}

type tipUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
}

func NewTipUseCase(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock) TipCommands {
	return &tipUseCaseImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
	}
}

// CreateTip records a pending tip and hands back a signed intent. The tip
// only counts toward earnings once the callback settles it as paid.
func (uc *tipUseCaseImpl) CreateTip(ctx context.Context, actorID uuid.UUID, actorRole user.Role, req CreateTipRequest) (*CreateTipResult, error) {
	if actorRole != user.RoleFoodie {
		return nil, ErrForbidden
	}

	t, err := domtip.NewTip(actorID, req.ChefID, req.OrderID, req.AmountCents, req.Message, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	ref := payment.TipReference(t.ID().String())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.OrderID != nil {
			o, derr := findOrder(ctx, tx, *req.OrderID)
			if derr != nil {
				return derr
			}
			if !o.IsOwnedByFoodie(actorID) || o.ChefID() != req.ChefID {
				return ErrForbidden
			}
		}

		_, derr := tx.Tips().Create(ctx, tx.DB(), t, ref)
		return derr
	})
	if err != nil {
		return nil, err
	}

	return &CreateTipResult{
		TipID:  t.ID(),
		Intent: uc.gateway.CreateIntent(ref, req.AmountCents),
	}, nil
}
