package bootstrap

import (
	"context"

	"go.uber.org/fx"

	"gymbook/internal/infra/mq"
	"gymbook/internal/pkg/config"
	"gymbook/internal/usecase/commands"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher connects to the broker when one is configured and
// falls back to a no-op publisher otherwise, so local setups run without
// RabbitMQ.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (commands.EventPublisher, error) {
	if cfg.Events.URL == "" {
		return mq.NoopPublisher{}, nil
	}

	pub, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}
