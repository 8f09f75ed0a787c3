package components

import (
	"studio-booking/internal/infra/cache"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/infra/readstore"
	repo_impl "studio-booking/internal/infra/repository"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewSessionRepository,
			fx.As(new(commands.SessionRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewCourseRepository,
			fx.As(new(commands.CourseRepository)),
		),
		fx.Annotate(
			repo_impl.NewMembershipRepository,
			fx.As(new(commands.EligibilityChecker)),
		),
		repo_impl.NewOutboxRepository,
		fx.Annotate(
			func(r *repo_impl.OutboxRepository) *repo_impl.OutboxRepository { return r },
			fx.As(new(commands.OutboxRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCourseReadStore,
			fx.As(new(queries.CourseReadStore)),
		),
		NewCachedSnapshotSource,
	),
)

// NewCachedSnapshotSource layers the redis catalog cache over the pg
// snapshot store for the read side.
func NewCachedSnapshotSource(pool db.DBTX, client *redis.Client, cfg config.Config) queries.SessionSnapshotSource {
	source := readstore.NewSessionSnapshotStore(pool)
	return cache.NewSessionSnapshotCache(source, client, cfg.Redis.CacheTTL)
}
