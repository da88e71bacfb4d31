package queries

import (
	"context"

	"chefbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDishNotFound = errs.New("dish not found")

type DishQueries interface {
	Availability(ctx context.Context, dishID uuid.UUID, date string) (*DishAvailabilityView, error)
	ListReviews(ctx context.Context, dishID uuid.UUID, page Page) ([]*ReviewView, error)
}

type DishViewRepo interface {
	FindAvailability(ctx context.Context, dishID uuid.UUID, date string) (*DishAvailabilityView, error)
	FindReviews(ctx context.Context, dishID uuid.UUID, limit, offset int32) ([]*ReviewView, error)
}

type dishQueriesImpl struct {
	repo DishViewRepo
}

func NewDishQueries(repo DishViewRepo) DishQueries {
	return &dishQueriesImpl{repo: repo}
}

// Availability reports max - reserved, floored at zero. A missing ledger
// row simply means nothing has been reserved yet.
func (q *dishQueriesImpl) Availability(ctx context.Context, dishID uuid.UUID, date string) (*DishAvailabilityView, error) {
	return q.repo.FindAvailability(ctx, dishID, date)
}

func (q *dishQueriesImpl) ListReviews(ctx context.Context, dishID uuid.UUID, page Page) ([]*ReviewView, error) {
	p := page.normalize()
	return q.repo.FindReviews(ctx, dishID, p.Limit(), p.Offset())
}
