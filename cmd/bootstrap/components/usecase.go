package components

import (
	"sneakerdrop/internal/events"
	"sneakerdrop/internal/pkg/clock"
	"sneakerdrop/internal/pkg/config"
	"sneakerdrop/internal/usecase/commands"
	"sneakerdrop/internal/usecase/queries"
	"sneakerdrop/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewReservationCommands,
		commands.NewDropCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDropQueries,
		queries.NewReservationQueries,
	),
)

func NewReservationCommands(
	u shared.UnitOfWork,
	broadcaster events.Broadcaster,
	clk clock.Clock,
	cfg config.Config,
) commands.ReservationCommands {
	return commands.NewReservationCommands(u, broadcaster, clk, cfg.Reservation.TTL)
}
