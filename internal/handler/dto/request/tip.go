package request

import (
	"github.com/google/uuid"
)

type CreateTipRequest struct {
	ChefID      uuid.UUID  `json:"chef_id" binding:"required"`
	AmountCents int64      `json:"amount_cents" binding:"required,min=1"`
	Message     string     `json:"message" binding:"max=200"`
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
}
