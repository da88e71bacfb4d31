package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page Page) ([]*NotificationView, error)
}

type NotificationViewRepo interface {
	FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int32) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	repo NotificationViewRepo
}

func NewNotificationQueries(repo NotificationViewRepo) NotificationQueries {
	return &notificationQueriesImpl{repo: repo}
}

func (q *notificationQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page Page) ([]*NotificationView, error) {
	p := page.normalize()
	return q.repo.FindByUser(ctx, userID, unreadOnly, p.Limit(), p.Offset())
}
