package components

import (
	"chefbook/internal/domain/order"
	"chefbook/internal/infra/payment"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/config"
	"chefbook/internal/pkg/ordernum"
	"chefbook/internal/usecase"
	"chefbook/internal/usecase/commands"
	"chefbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewOrderNumberGenerator,
	order.NewFactory,
	fx.Annotate(
		NewPaymentGateway,
		fx.As(new(commands.PaymentGateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewAuthUseCase,
		commands.NewOrderUseCase,
		commands.NewPaymentUseCase,
		commands.NewBindingUseCase,
		commands.NewReviewUseCase,
		commands.NewTipUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewDishQueries,
		queries.NewBindingQueries,
		queries.NewEarningsQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewOrderNumberGenerator(cfg config.Config) (ordernum.Generator, error) {
	return ordernum.NewSnowflakeGenerator(cfg.Server.NodeID)
}

func NewPaymentGateway(cfg config.Config, clk clock.Clock) *payment.Gateway {
	return payment.NewGateway(cfg.Payment, clk)
}
