package components

import (
	"driftwell/internal/infra/db"
	"driftwell/internal/infra/readstore"
	repo_impl "driftwell/internal/infra/repository"
	"driftwell/internal/usecase/commands"
	"driftwell/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Read side: one store feeds conflict detection, availability
		// occupancy, and the booking views.
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(commands.BookingReadStore)),
			fx.As(new(queries.BookingOccupancyReadStore)),
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
