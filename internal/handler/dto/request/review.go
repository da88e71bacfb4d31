package request

import (
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	Content string    `json:"content" binding:"max=1000"`
	Images  []string  `json:"images" binding:"max=9,dive,url"`
}
