package repository

import (
	"context"

	"chefbook/internal/infra"
	"chefbook/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// Create persists a notification record. Realtime delivery happens
// separately, after commit; the row is the durable source of truth.
func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, kind, title, body string, payload []byte) error {
	if payload == nil {
		payload = []byte("{}")
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO notifications (id, user_id, type, title, body, payload, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, false, now())`,
		uuid.New(), userID, kind, title, body, payload)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, userID, notificationID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE notifications SET read = true
		WHERE id = $1 AND user_id = $2`,
		notificationID, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
