package queries

import (
	"context"

	"chefbook/internal/domain/user"
	"chefbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrForbidden = errs.New("actor does not own this resource")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Page normalizes the page/page_size pair coming off the wire.
type Page struct {
	Number int32
	Size   int32
}

func (p Page) normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

func (p Page) Limit() int32  { return p.Size }
func (p Page) Offset() int32 { return (p.Number - 1) * p.Size }

type OrderQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) (*OrderView, error)
	ListForActor(ctx context.Context, actorID uuid.UUID, actorRole user.Role, status string, page Page) ([]*OrderListItem, error)
}

type OrderViewRepo interface {
	FindByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
	FindByFoodie(ctx context.Context, foodieID uuid.UUID, status string, limit, offset int32) ([]*OrderListItem, error)
	FindByChef(ctx context.Context, chefID uuid.UUID, status string, limit, offset int32) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

// GetByID is owner-gated: only the order's foodie or chef may read it.
func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) (*OrderView, error) {
	view, err := q.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if view.FoodieID != actorID && view.ChefID != actorID {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *orderQueriesImpl) ListForActor(ctx context.Context, actorID uuid.UUID, actorRole user.Role, status string, page Page) ([]*OrderListItem, error) {
	p := page.normalize()
	if actorRole == user.RoleChef {
		return q.repo.FindByChef(ctx, actorID, status, p.Limit(), p.Offset())
	}
	return q.repo.FindByFoodie(ctx, actorID, status, p.Limit(), p.Offset())
}
