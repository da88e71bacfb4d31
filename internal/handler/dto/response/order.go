package response

import (
	"time"

	"chefbook/internal/usecase/commands"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateOrderResponse struct {
	OrderID    uuid.UUID `json:"orderId"`
	OrderNo    int64     `json:"orderNo"`
	TotalCents int64     `json:"totalCents"`
}

func FromCreateOrderResult(r *commands.CreateOrderResult) *CreateOrderResponse {
	return &CreateOrderResponse{
		OrderID:    r.OrderID,
		OrderNo:    r.OrderNo,
		TotalCents: r.TotalCents,
	}
}

type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	OrderNo      int64               `json:"orderNo"`
	FoodieID     uuid.UUID           `json:"foodieId"`
	ChefID       uuid.UUID           `json:"chefId"`
	Status       string              `json:"status"`
	TotalCents   int64               `json:"totalCents"`
	DeliveryAt   time.Time           `json:"deliveryAt"`
	Address      queries.AddressView `json:"address"`
	Remark       string              `json:"remark,omitempty"`
	CancelReason *string             `json:"cancelReason,omitempty"`
	IsReviewed   bool                `json:"isReviewed"`
	Items        []OrderItemResponse `json:"items"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	CompletedAt  *time.Time          `json:"completedAt,omitempty"`
}

type OrderItemResponse struct {
	DishID        uuid.UUID `json:"dishId"`
	DishName      string    `json:"dishName"`
	DishImage     string    `json:"dishImage,omitempty"`
	PriceCents    int64     `json:"priceCents"`
	Quantity      int32     `json:"quantity"`
	SubtotalCents int64     `json:"subtotalCents"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	resp := &OrderResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

type OrderListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	OrderNo    int64     `json:"orderNo"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	DeliveryAt time.Time `json:"deliveryAt"`
	ItemCount  int32     `json:"itemCount"`
	FirstDish  string    `json:"firstDish"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromOrderListItems(items []*queries.OrderListItem) []*OrderListItemResponse {
	result := make([]*OrderListItemResponse, 0, len(items))
	for _, item := range items {
		resp := &OrderListItemResponse{}
		_ = copier.Copy(resp, item)
		result = append(result, resp)
	}
	return result
}
