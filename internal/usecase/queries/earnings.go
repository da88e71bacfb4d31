package queries

import (
	"context"
	"time"

	"chefbook/internal/domain/user"
	"chefbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidChartPeriod = errs.New("chart period must be weekly or monthly")

const (
	ChartPeriodWeekly  = "weekly"
	ChartPeriodMonthly = "monthly"
)

// EarningsChartPoint is one day's bucket of the chef's income.
type EarningsChartPoint struct {
	Label      string `json:"label"`
	OrderCents int64  `json:"order_cents"`
	TipCents   int64  `json:"tip_cents"`
	TotalCents int64  `json:"total_cents"`
}

type EarningsChartView struct {
	Period string               `json:"period"`
	Points []EarningsChartPoint `json:"points"`
}

// EarningsRecordView is a single settled transaction, order or tip.
type EarningsRecordView struct {
	Kind        string    `json:"kind"`
	RefID       uuid.UUID `json:"ref_id"`
	AmountCents int64     `json:"amount_cents"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type EarningsDetailView struct {
	Records []EarningsRecordView `json:"records"`
	Total   int64                `json:"total"`
}

type EarningsQueries interface {
	Summary(ctx context.Context, actorID uuid.UUID, actorRole user.Role) (*EarningsSummaryView, error)
	Chart(ctx context.Context, actorID uuid.UUID, actorRole user.Role, period string) (*EarningsChartView, error)
	Detail(ctx context.Context, actorID uuid.UUID, actorRole user.Role, page Page) (*EarningsDetailView, error)
}

type EarningsViewRepo interface {
	Summarize(ctx context.Context, chefID uuid.UUID) (*EarningsSummaryView, error)
	ChartPoints(ctx context.Context, chefID uuid.UUID, days int32) ([]EarningsChartPoint, error)
	Records(ctx context.Context, chefID uuid.UUID, limit, offset int32) ([]EarningsRecordView, int64, error)
}

type earningsQueriesImpl struct {
	repo EarningsViewRepo
}

func NewEarningsQueries(repo EarningsViewRepo) EarningsQueries {
	return &earningsQueriesImpl{repo: repo}
}

func (q *earningsQueriesImpl) Summary(ctx context.Context, actorID uuid.UUID, actorRole user.Role) (*EarningsSummaryView, error) {
	if actorRole != user.RoleChef {
		return nil, ErrForbidden
	}
	return q.repo.Summarize(ctx, actorID)
}

// Chart buckets the chef's settled income per calendar day: the last 7 days
// for weekly, the last 30 for monthly.
func (q *earningsQueriesImpl) Chart(ctx context.Context, actorID uuid.UUID, actorRole user.Role, period string) (*EarningsChartView, error) {
	if actorRole != user.RoleChef {
		return nil, ErrForbidden
	}

	var days int32
	switch period {
	case ChartPeriodWeekly:
		days = 7
	case ChartPeriodMonthly:
		days = 30
	default:
		return nil, ErrInvalidChartPeriod
	}

	points, err := q.repo.ChartPoints(ctx, actorID, days)
	if err != nil {
		return nil, err
	}
	return &EarningsChartView{Period: period, Points: points}, nil
}

// Detail lists the chef's settled transactions, newest first, orders and
// paid tips interleaved.
func (q *earningsQueriesImpl) Detail(ctx context.Context, actorID uuid.UUID, actorRole user.Role, page Page) (*EarningsDetailView, error) {
	if actorRole != user.RoleChef {
		return nil, ErrForbidden
	}

	page = page.normalize()
	records, total, err := q.repo.Records(ctx, actorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return &EarningsDetailView{Records: records, Total: total}, nil
}
