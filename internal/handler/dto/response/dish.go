package response

import (
	"time"

	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DishAvailabilityResponse struct {
	DishID    uuid.UUID `json:"dish_id"`
	Date      string    `json:"date"`
	MaxUnits  int32     `json:"max_units"`
	Reserved  int32     `json:"reserved"`
	Remaining int32     `json:"remaining"`
}

func FromDishAvailability(view *queries.DishAvailabilityView) *DishAvailabilityResponse {
	resp := &DishAvailabilityResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

type ReviewResponse struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	DishID         uuid.UUID `json:"dish_id"`
	FoodieNickname string    `json:"foodie_nickname"`
	Rating         int32     `json:"rating"`
	Content        string    `json:"content,omitempty"`
	Images         []string  `json:"images,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	result := make([]*ReviewResponse, 0, len(views))
	for _, v := range views {
		resp := &ReviewResponse{}
		_ = copier.Copy(resp, v)
		result = append(result, resp)
	}
	return result
}
