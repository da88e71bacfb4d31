//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"chefbook/internal/domain/order"
	"chefbook/internal/domain/review"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/usecase/commands"
	"chefbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	store *fakeStore
	cmds  commands.ReviewCommands

	foodieID uuid.UUID
	chefID   uuid.UUID
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.cmds = commands.NewReviewUseCase(newFakeUoW(s.store), clock.NewRealClock())
	s.foodieID = uuid.New()
	s.chefID = uuid.New()
}

// Each subtest gets a fresh store; counts below are absolute, not deltas.
func (s *ReviewCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) seedOrder(status order.Status) *order.Order {
	o := builder.NewOrderBuilder().
		WithFoodieID(s.foodieID).
		WithChefID(s.chefID).
		BuildDomainWithStatus(status)
	s.store.putOrder(o)
	return o
}

func (s *ReviewCommandsTestSuite) request(orderID uuid.UUID) commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		OrderID: orderID,
		Rating:  5,
		Content: "Delicious, arrived hot",
	}
}

func (s *ReviewCommandsTestSuite) TestCreateReview() {
	s.Run("completed order takes one review per dish", func() {
		o := s.seedOrder(order.StatusCompleted)

		result, err := s.cmds.CreateReview(context.Background(), s.foodieID, s.request(o.ID()))
		s.Require().NoError(err)
		s.Len(result.ReviewIDs, 1)

		s.store.mu.Lock()
		reviews := len(s.store.reviews)
		recalced := append([]uuid.UUID(nil), s.store.recalcedDish...)
		recalcedChef := append([]uuid.UUID(nil), s.store.recalcedChef...)
		reviewed := s.store.orders[o.ID()].Reviewed()
		s.store.mu.Unlock()

		s.Equal(1, reviews)
		s.Equal([]uuid.UUID{o.Lines()[0].DishID}, recalced)
		s.Equal([]uuid.UUID{s.chefID}, recalcedChef)
		s.True(reviewed)
	})

	s.Run("repeated lines of the same dish collapse to one review", func() {
		dishA := uuid.New()
		dishB := uuid.New()
		now := time.Now()
		lines := []order.Line{
			{DishID: dishA, DishName: "Mapo Tofu", PriceCents: 3200, Quantity: 1},
			{DishID: dishA, DishName: "Mapo Tofu", PriceCents: 3200, Quantity: 2},
			{DishID: dishB, DishName: "Dan Dan Noodles", PriceCents: 2800, Quantity: 1},
		}
		completedAt := now
		o := order.ReconstructOrder(
			uuid.New(), 100002, s.foodieID, s.chefID,
			lines, order.NewMoney(12400),
			now, order.AddressSnapshot{Name: "Alice", Phone: "13800000000", City: "Shanghai", Detail: "1 Example Road"},
			order.Remark{}, "", false, "",
			order.StatusCompleted, now, now, &completedAt,
		)
		s.store.putOrder(o)

		result, err := s.cmds.CreateReview(context.Background(), s.foodieID, s.request(o.ID()))
		s.Require().NoError(err)
		s.Len(result.ReviewIDs, 2)

		s.store.mu.Lock()
		recalced := append([]uuid.UUID(nil), s.store.recalcedDish...)
		recalcedChef := append([]uuid.UUID(nil), s.store.recalcedChef...)
		s.store.mu.Unlock()
		s.Equal([]uuid.UUID{dishA, dishB}, recalced)
		s.Equal([]uuid.UUID{s.chefID}, recalcedChef)
	})

	s.Run("only completed orders are reviewable", func() {
		o := s.seedOrder(order.StatusDelivering)
		_, err := s.cmds.CreateReview(context.Background(), s.foodieID, s.request(o.ID()))
		s.ErrorIs(err, order.ErrOrderNotCompleted)
	})

	s.Run("only the buyer reviews", func() {
		o := s.seedOrder(order.StatusCompleted)
		_, err := s.cmds.CreateReview(context.Background(), uuid.New(), s.request(o.ID()))
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("a second review loses on the reviewed flag", func() {
		o := s.seedOrder(order.StatusCompleted)
		_, err := s.cmds.CreateReview(context.Background(), s.foodieID, s.request(o.ID()))
		s.Require().NoError(err)

		_, err = s.cmds.CreateReview(context.Background(), s.foodieID, s.request(o.ID()))
		s.ErrorIs(err, order.ErrAlreadyReviewed)

		s.store.mu.Lock()
		reviews := len(s.store.reviews)
		s.store.mu.Unlock()
		s.Equal(1, reviews)
	})

	s.Run("rating is validated before any lookup", func() {
		req := s.request(uuid.New())
		req.Rating = 6
		_, err := s.cmds.CreateReview(context.Background(), s.foodieID, req)
		s.ErrorIs(err, review.ErrInvalidRating)
	})

	s.Run("unknown order", func() {
		_, err := s.cmds.CreateReview(context.Background(), s.foodieID, s.request(uuid.New()))
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})
}
