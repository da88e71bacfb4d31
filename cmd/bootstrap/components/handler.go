package components

import (
	"chefbook/internal/handler"
	"chefbook/internal/handler/api"
	"chefbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewPaymentHandler,
		api.NewBindingHandler,
		api.NewReviewHandler,
		api.NewTipHandler,
		api.NewDishHandler,
		api.NewEarningsHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	order *api.OrderHandler,
	pay *api.PaymentHandler,
	binding *api.BindingHandler,
	review *api.ReviewHandler,
	tip *api.TipHandler,
	dish *api.DishHandler,
	earnings *api.EarningsHandler,
	notification *api.NotificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Order:        order,
		Payment:      pay,
		Binding:      binding,
		Review:       review,
		Tip:          tip,
		Dish:         dish,
		Earnings:     earnings,
		Notification: notification,
	}
}
