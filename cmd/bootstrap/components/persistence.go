package components

import (
	"chefbook/internal/infra/db"
	"chefbook/internal/infra/readstore"
	"chefbook/internal/infra/uow"
	"chefbook/internal/usecase"
	"chefbook/internal/usecase/queries"
	"chefbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewDishReadStore,
			fx.As(new(queries.DishViewRepo)),
		),
		fx.Annotate(
			readstore.NewBindingReadStore,
			fx.As(new(queries.BindingViewRepo)),
		),
		fx.Annotate(
			readstore.NewEarningsReadStore,
			fx.As(new(queries.EarningsViewRepo)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
			fx.As(new(usecase.CredentialsReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
