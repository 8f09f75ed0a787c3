package bootstrap

import (
	"context"

	"studio-booking/internal/infra/outbox"
	"studio-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewPublisher,
		fx.Annotate(
			func(p *outbox.Publisher) *outbox.Publisher { return p },
			fx.As(new(outbox.EventPublisher)),
		),
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*outbox.Publisher, error) {
	publisher, err := outbox.NewPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
