package request

import (
	"time"

	"chefbook/internal/domain/order"
	"chefbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderLineRequest struct {
	DishID   uuid.UUID `json:"dish_id" binding:"required"`
	Quantity int32     `json:"quantity" binding:"required,min=1"`
}

type AddressRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Phone    string `json:"phone" binding:"required,max=20"`
	Province string `json:"province" binding:"max=50"`
	City     string `json:"city" binding:"max=50"`
	District string `json:"district" binding:"max=50"`
	Detail   string `json:"detail" binding:"required,max=200"`
}

type CreateOrderRequest struct {
	Lines      []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	DeliveryAt time.Time          `json:"delivery_at" binding:"required"`
	Address    AddressRequest     `json:"address" binding:"required"`
	Remark     string             `json:"remark" binding:"max=500"`
}

func (r *CreateOrderRequest) ToCommand() commands.CreateOrderRequest {
	lines := make([]order.LineRequest, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, order.LineRequest{
			DishID:   l.DishID,
			Quantity: l.Quantity,
		})
	}
	return commands.CreateOrderRequest{
		Lines:      lines,
		DeliveryAt: r.DeliveryAt,
		Address: order.AddressSnapshot{
			Name:     r.Address.Name,
			Phone:    r.Address.Phone,
			Province: r.Address.Province,
			City:     r.Address.City,
			District: r.Address.District,
			Detail:   r.Address.Detail,
		},
		Remark: r.Remark,
	}
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=200"`
}

type RejectOrderRequest struct {
	Reason string `json:"reason" binding:"required,max=200"`
}
