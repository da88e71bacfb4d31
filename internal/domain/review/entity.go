package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is one foodie's rating of one dish, created per order line when
// a completed order is reviewed.
type Review struct {
	id        uuid.UUID
	orderID   uuid.UUID
	foodieID  uuid.UUID
	chefID    uuid.UUID
	dishID    uuid.UUID
	rating    Rating
	content   Content
	images    []string
	createdAt time.Time
}

func NewReview(orderID, foodieID, chefID, dishID uuid.UUID, rating Rating, content Content, images []string, now time.Time) (*Review, error) {
	if len(images) > MaxImages {
		return nil, ErrTooManyImages
	}
	return &Review{
		id:        uuid.New(),
		orderID:   orderID,
		foodieID:  foodieID,
		chefID:    chefID,
		dishID:    dishID,
		rating:    rating,
		content:   content,
		images:    images,
		createdAt: now,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) OrderID() uuid.UUID   { return r.orderID }
func (r *Review) FoodieID() uuid.UUID  { return r.foodieID }
func (r *Review) ChefID() uuid.UUID    { return r.chefID }
func (r *Review) DishID() uuid.UUID    { return r.dishID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Content() Content     { return r.content }
func (r *Review) Images() []string     { return r.images }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
