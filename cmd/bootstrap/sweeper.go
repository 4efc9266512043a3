package bootstrap

import (
	"context"
	"log/slog"

	"sneakerdrop/internal/events"
	"sneakerdrop/internal/pkg/clock"
	"sneakerdrop/internal/pkg/config"
	"sneakerdrop/internal/sweeper"
	"sneakerdrop/internal/usecase/queries"
	"sneakerdrop/internal/usecase/shared"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(runSweeper),
)

func NewSweeper(
	uow shared.UnitOfWork,
	reservations queries.ReservationReadStore,
	broadcaster events.Broadcaster,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *sweeper.Sweeper {
	return sweeper.New(uow, reservations, broadcaster, clk, cfg.Reservation.SweepInterval, logger)
}

func runSweeper(lc fx.Lifecycle, s *sweeper.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
