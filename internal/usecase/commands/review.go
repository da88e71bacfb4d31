package commands

import (
	"context"

	"chefbook/internal/domain/order"
	domreview "chefbook/internal/domain/review"
	"chefbook/internal/infra"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/errs"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	OrderID uuid.UUID
	Rating  int
	Content string
	Images  []string
}

type CreateReviewResult struct {
	ReviewIDs []uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, actorID uuid.UUID, req CreateReviewRequest) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview writes one review row per distinct dish on the order and
// recalculates each dish's rating, then the chef's aggregate rating, in the
// same transaction. The order's
// is_reviewed flag is flipped with a conditional update, so a concurrent
// duplicate attempt loses before any review row lands.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, actorID uuid.UUID, req CreateReviewRequest) (*CreateReviewResult, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}
	content, err := domreview.NewContent(req.Content)
	if err != nil {
		return nil, err
	}

	var result CreateReviewResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := findOrder(ctx, tx, req.OrderID)
		if derr != nil {
			return derr
		}
		if !o.IsOwnedByFoodie(actorID) {
			return ErrForbidden
		}
		if derr = o.ReviewEligible(); derr != nil {
			return derr
		}

		if derr = tx.Orders().MarkReviewed(ctx, tx.DB(), o.ID()); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, order.ErrAlreadyReviewed)
			}
			return derr
		}

		seen := make(map[uuid.UUID]bool, len(o.Lines()))
		for _, line := range o.Lines() {
			if seen[line.DishID] {
				continue
			}
			seen[line.DishID] = true

			rv, derr := domreview.NewReview(o.ID(), actorID, o.ChefID(), line.DishID,
				rating, content, req.Images, uc.clock.Now())
			if derr != nil {
				return derr
			}
			id, derr := tx.Reviews().Create(ctx, tx.DB(), rv)
			if derr != nil {
				return derr
			}
			result.ReviewIDs = append(result.ReviewIDs, id)

			if derr = tx.RatingStats().RecalcDishRating(ctx, tx.DB(), line.DishID); derr != nil {
				return derr
			}
		}
		return tx.RatingStats().RecalcChefRating(ctx, tx.DB(), o.ChefID())
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
