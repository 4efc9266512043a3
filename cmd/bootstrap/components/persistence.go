package components

import (
	"sneakerdrop/internal/events"
	"sneakerdrop/internal/infra/broadcast"
	"sneakerdrop/internal/infra/readstore"
	"sneakerdrop/internal/infra/uow"
	"sneakerdrop/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read-side stores
		fx.Annotate(
			readstore.NewDropReadStore,
			fx.As(new(queries.DropReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Event fan-out
		fx.Annotate(
			broadcast.NewRedisBroadcaster,
			fx.As(new(events.Broadcaster)),
		),
	),
)
