package components

import (
	"context"

	"studio-booking/internal/infra/outbox"
	repo_impl "studio-booking/internal/infra/repository"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			func(r *repo_impl.OutboxRepository) *repo_impl.OutboxRepository { return r },
			fx.As(new(outbox.EventStore)),
		),
		outbox.NewRelay,
	),
	fx.Invoke(startRelay),
)

func startRelay(lc fx.Lifecycle, relay *outbox.Relay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
}
