package commands

import (
	"context"

	"chefbook/internal/infra"
	"chefbook/internal/pkg/errs"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, actorID, notificationID uuid.UUID) error
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

// MarkRead is scoped to the actor; marking someone else's notification
// reads as not found rather than forbidden.
func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, actorID, notificationID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().MarkRead(ctx, tx.DB(), actorID, notificationID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNotificationNotFound)
			}
			return err
		}
		return nil
	})
}
