//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"chefbook/internal/domain/user"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeEarningsRepo struct {
	chartDays  int32
	lastLimit  int32
	lastOffset int32
}

func (r *fakeEarningsRepo) Summarize(_ context.Context, _ uuid.UUID) (*queries.EarningsSummaryView, error) {
	return &queries.EarningsSummaryView{
		CompletedOrderCents: 13600,
		CompletedOrderCount: 1,
		PaidTipCents:        500,
		PaidTipCount:        1,
		TotalCents:          14100,
	}, nil
}

func (r *fakeEarningsRepo) ChartPoints(_ context.Context, _ uuid.UUID, days int32) ([]queries.EarningsChartPoint, error) {
	r.chartDays = days
	points := make([]queries.EarningsChartPoint, days)
	return points, nil
}

func (r *fakeEarningsRepo) Records(_ context.Context, _ uuid.UUID, limit, offset int32) ([]queries.EarningsRecordView, int64, error) {
	r.lastLimit = limit
	r.lastOffset = offset
	return []queries.EarningsRecordView{
		{Kind: "order", RefID: uuid.New(), AmountCents: 13600, OccurredAt: time.Now()},
	}, 1, nil
}

type EarningsQueriesTestSuite struct {
	suite.Suite
	repo *fakeEarningsRepo
	q    queries.EarningsQueries

	chefID uuid.UUID
}

func (s *EarningsQueriesTestSuite) SetupTest() {
	s.repo = &fakeEarningsRepo{}
	s.q = queries.NewEarningsQueries(s.repo)
	s.chefID = uuid.New()
}

func (s *EarningsQueriesTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestEarningsQueriesSuite(t *testing.T) {
	suite.Run(t, new(EarningsQueriesTestSuite))
}

func (s *EarningsQueriesTestSuite) TestSummary() {
	s.Run("chef reads their totals", func() {
		view, err := s.q.Summary(context.Background(), s.chefID, user.RoleChef)
		s.Require().NoError(err)
		s.Equal(int64(14100), view.TotalCents)
	})

	s.Run("foodies have no earnings", func() {
		_, err := s.q.Summary(context.Background(), s.chefID, user.RoleFoodie)
		s.ErrorIs(err, queries.ErrForbidden)
	})
}

func (s *EarningsQueriesTestSuite) TestChart() {
	s.Run("weekly buckets the trailing seven days", func() {
		view, err := s.q.Chart(context.Background(), s.chefID, user.RoleChef, queries.ChartPeriodWeekly)
		s.Require().NoError(err)
		s.Equal(int32(7), s.repo.chartDays)
		s.Equal(queries.ChartPeriodWeekly, view.Period)
		s.Len(view.Points, 7)
	})

	s.Run("monthly buckets the trailing thirty days", func() {
		_, err := s.q.Chart(context.Background(), s.chefID, user.RoleChef, queries.ChartPeriodMonthly)
		s.Require().NoError(err)
		s.Equal(int32(30), s.repo.chartDays)
	})

	s.Run("unknown period", func() {
		_, err := s.q.Chart(context.Background(), s.chefID, user.RoleChef, "yearly")
		s.ErrorIs(err, queries.ErrInvalidChartPeriod)
	})

	s.Run("foodie is rejected before any query", func() {
		_, err := s.q.Chart(context.Background(), s.chefID, user.RoleFoodie, queries.ChartPeriodWeekly)
		s.ErrorIs(err, queries.ErrForbidden)
		s.Zero(s.repo.chartDays)
	})
}

func (s *EarningsQueriesTestSuite) TestDetail() {
	s.Run("zero page falls back to defaults", func() {
		view, err := s.q.Detail(context.Background(), s.chefID, user.RoleChef, queries.Page{})
		s.Require().NoError(err)
		s.Equal(int32(20), s.repo.lastLimit)
		s.Equal(int32(0), s.repo.lastOffset)
		s.Equal(int64(1), view.Total)
		s.Len(view.Records, 1)
	})

	s.Run("page and size drive the window", func() {
		_, err := s.q.Detail(context.Background(), s.chefID, user.RoleChef, queries.Page{Number: 3, Size: 10})
		s.Require().NoError(err)
		s.Equal(int32(10), s.repo.lastLimit)
		s.Equal(int32(20), s.repo.lastOffset)
	})

	s.Run("foodie is rejected", func() {
		_, err := s.q.Detail(context.Background(), s.chefID, user.RoleFoodie, queries.Page{})
		s.ErrorIs(err, queries.ErrForbidden)
	})
}
