package queries

import (
	"context"

	"github.com/google/uuid"
)

type BindingQueries interface {
	GetForFoodie(ctx context.Context, foodieID uuid.UUID) (*BindingView, error)
}

type BindingViewRepo interface {
	FindByFoodie(ctx context.Context, foodieID uuid.UUID) (*BindingView, error)
}

type bindingQueriesImpl struct {
	repo BindingViewRepo
}

func NewBindingQueries(repo BindingViewRepo) BindingQueries {
	return &bindingQueriesImpl{repo: repo}
}

func (q *bindingQueriesImpl) GetForFoodie(ctx context.Context, foodieID uuid.UUID) (*BindingView, error) {
	return q.repo.FindByFoodie(ctx, foodieID)
}
