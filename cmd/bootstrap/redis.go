package bootstrap

import (
	"context"

	"chefbook/internal/infra/notify"
	"chefbook/internal/pkg/config"
	"chefbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		fx.Annotate(
			NewNotifyPublisher,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewNotifyPublisher(lc fx.Lifecycle, cfg config.Config) (*notify.Publisher, error) {
	publisher, cleanup, err := notify.NewPublisher(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
