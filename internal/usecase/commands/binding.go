package commands

import (
	"context"

	"chefbook/internal/domain/binding"
	"chefbook/internal/domain/user"
	"chefbook/internal/infra"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/errs"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidBindingCode = errs.New("binding code does not resolve to a chef")
	ErrAlreadyBound       = errs.New("foodie already holds an active binding")
	ErrSelfBinding        = errs.New("cannot bind to oneself")
)

type BindResult struct {
	ChefID       uuid.UUID
	ChefNickname string
}

type BindingCommands interface {
	Bind(ctx context.Context, actorID uuid.UUID, actorRole user.Role, code string) (*BindResult, error)
	Unbind(ctx context.Context, actorID uuid.UUID, actorRole user.Role) error
}

type bindingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier Notifier
}

func NewBindingUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier Notifier) BindingCommands {
	return &bindingUseCaseImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
	}
}

// Bind pairs the calling foodie with the chef owning the code. The binding
// table's primary key decides concurrent races; there is no replace
// semantics, a bound foodie must unbind first.
func (uc *bindingUseCaseImpl) Bind(ctx context.Context, actorID uuid.UUID, actorRole user.Role, code string) (*BindResult, error) {
	if actorRole != user.RoleFoodie {
		return nil, ErrForbidden
	}

	var result BindResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		chef, derr := tx.Reads().ChefByBindingCode(ctx, code)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrInvalidBindingCode)
			}
			return derr
		}

		b, derr := binding.NewBinding(actorID, chef.ID, code, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrSelfBinding)
		}

		if derr = tx.Bindings().TryInsert(ctx, tx.DB(), b); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrAlreadyBound)
			}
			return derr
		}

		if derr = tx.Notifications().Create(ctx, tx.DB(), chef.ID,
			"foodie_bound", "New foodie", "A foodie bound to your kitchen", nil); derr != nil {
			return derr
		}
		if derr = tx.Notifications().Create(ctx, tx.DB(), actorID,
			"binding_created", "Bound to chef", chef.Nickname, nil); derr != nil {
			return derr
		}

		result = BindResult{ChefID: chef.ID, ChefNickname: chef.Nickname}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.notifier, result.ChefID, "foodie_bound", "New foodie")
	publishEvent(ctx, uc.notifier, actorID, "binding_created", "Bound to chef")
	return &result, nil
}

func (uc *bindingUseCaseImpl) Unbind(ctx context.Context, actorID uuid.UUID, actorRole user.Role) error {
	if actorRole != user.RoleFoodie {
		return ErrForbidden
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bindings().Delete(ctx, tx.DB(), actorID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNotBound)
			}
			return err
		}
		return nil
	})
}
