package readstore

import (
	"context"

	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

func (r *NotificationReadStore) FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int32) ([]*queries.NotificationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, type, title, body, payload, read, created_at
		FROM notifications
		WHERE user_id = $1 AND ($2 = false OR read = false)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`,
		userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		var view queries.NotificationView
		if err := rows.Scan(&view.ID, &view.Type, &view.Title, &view.Body,
			&view.Payload, &view.Read, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}
	return result, nil
}
