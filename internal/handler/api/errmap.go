package api

import (
	"errors"
	"net/http"

	"chefbook/internal/domain/order"
	"chefbook/internal/domain/review"
	"chefbook/internal/domain/tip"
	"chefbook/internal/handler/httperr"
	"chefbook/internal/infra"
	"chefbook/internal/usecase/commands"
	"chefbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errRule struct {
	target  error
	status  int
	message string
}

// errRules maps business errors to their HTTP shape. Authorization failures
// stay distinct from state conflicts so a client can tell "not yours" from
// "too late".
var errRules = []errRule{
	{commands.ErrForbidden, http.StatusForbidden, "Operation not permitted"},
	{queries.ErrForbidden, http.StatusForbidden, "Operation not permitted"},
	{order.ErrForbiddenTransition, http.StatusForbidden, "Operation not permitted for this role"},

	{commands.ErrDishSoldOut, http.StatusConflict, "Dish sold out for the requested date"},
	{order.ErrInvalidStatusTransition, http.StatusConflict, "Order status does not allow this operation"},
	{commands.ErrOrderNotCancellable, http.StatusConflict, "Order can no longer be cancelled"},
	{commands.ErrOrderNotPayable, http.StatusConflict, "Order is not awaiting payment"},
	{order.ErrAlreadyReviewed, http.StatusConflict, "Order already reviewed"},
	{commands.ErrAlreadyBound, http.StatusConflict, "Already bound to a chef"},

	{commands.ErrInvalidBindingCode, http.StatusNotFound, "Binding code not found"},
	{commands.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{commands.ErrDishNotFound, http.StatusNotFound, "Dish not found"},
	{queries.ErrDishNotFound, http.StatusNotFound, "Dish not found"},
	{commands.ErrNotificationNotFound, http.StatusNotFound, "Notification not found"},

	{commands.ErrSelfBinding, http.StatusBadRequest, "Cannot bind to yourself"},
	{commands.ErrNotBound, http.StatusBadRequest, "No active chef binding"},
	{commands.ErrCancelReasonRequired, http.StatusBadRequest, "A reason is required"},
	{order.ErrOrderNotCompleted, http.StatusBadRequest, "Order is not completed"},
	{order.ErrInvalidDeliveryDate, http.StatusBadRequest, "Delivery date is not available for this dish"},
	{order.ErrEmptyOrder, http.StatusBadRequest, "Order must contain at least one item"},
	{order.ErrInvalidQuantity, http.StatusBadRequest, "Item quantity must be at least 1"},
	{order.ErrDishNotOnShelf, http.StatusBadRequest, "Dish is not on shelf"},
	{order.ErrDishNotOwnedByChef, http.StatusBadRequest, "Dish does not belong to your chef"},
	{order.ErrIncompleteAddress, http.StatusBadRequest, "Address requires name, phone and detail"},
	{order.ErrRemarkTooLong, http.StatusBadRequest, "Remark too long"},
	{review.ErrInvalidRating, http.StatusBadRequest, "Rating must be between 1 and 5"},
	{review.ErrContentTooLong, http.StatusBadRequest, "Review content too long"},
	{review.ErrTooManyImages, http.StatusBadRequest, "Too many review images"},
	{tip.ErrInvalidAmount, http.StatusBadRequest, "Tip amount must be positive"},
	{tip.ErrSelfTipping, http.StatusBadRequest, "Cannot tip yourself"},
	{queries.ErrInvalidChartPeriod, http.StatusBadRequest, "Chart period must be weekly or monthly"},
}

func abortWithBusinessError(c *gin.Context, err error) {
	for _, rule := range errRules {
		if errors.Is(err, rule.target) {
			httperr.AbortWithError(c, rule.status, err, rule.message, nil)
			return
		}
	}
	if infra.IsKind(err, infra.KindNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
