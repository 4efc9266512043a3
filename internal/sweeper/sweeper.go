package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sneakerdrop/internal/domain/drop"
	"sneakerdrop/internal/domain/reservation"
	"sneakerdrop/internal/events"
	"sneakerdrop/internal/pkg/clock"
	"sneakerdrop/internal/pkg/errs"
	"sneakerdrop/internal/usecase/queries"
	"sneakerdrop/internal/usecase/shared"

	"github.com/google/uuid"
)

// batchLimit caps how many expired reservations one tick picks up. Anything
// beyond the cap is reclaimed on the next tick.
const batchLimit = 100

// Sweeper periodically reclaims stock held by reservations whose TTL has
// elapsed. Each reservation is reclaimed in its own transaction so one bad
// row cannot block the rest of the batch.
type Sweeper struct {
	uow          shared.UnitOfWork
	reservations queries.ReservationReadStore
	broadcaster  events.Broadcaster
	clock        clock.Clock
	interval     time.Duration
	logger       *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func New(
	uow shared.UnitOfWork,
	reservations queries.ReservationReadStore,
	broadcaster events.Broadcaster,
	clk clock.Clock,
	interval time.Duration,
	logger *slog.Logger,
) *Sweeper {
	return &Sweeper{
		uow:          uow,
		reservations: reservations,
		broadcaster:  broadcaster,
		clock:        clk,
		interval:     interval,
		logger:       logger,
	}
}

// Start launches the sweep loop in a background goroutine.
func (s *Sweeper) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		s.run(ctx)
	}()
}

// Stop stops the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	s.once.Do(func() {
		if s.cancel == nil {
			return
		}
		s.cancel()
		<-s.done
	})
}

func (s *Sweeper) run(ctx context.Context) {
	s.logger.Info("reservation sweeper started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reservation sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce reclaims every reservation whose expiry instant has passed, up to
// batchLimit. It returns the number of reservations actually expired.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	now := s.clock.Now()

	ids, err := s.reservations.ExpiredActiveIDs(ctx, now, batchLimit)
	if err != nil {
		s.logger.Error("failed to list expired reservations", "error", err.Error())
		return 0
	}
	if len(ids) == 0 {
		return 0
	}

	swept := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		ok, err := s.expireOne(ctx, id, now)
		if err != nil {
			// Fault isolation: log and move on to the next reservation.
			s.logger.Error("failed to expire reservation",
				"reservation_id", id.String(),
				"error", err.Error())
			continue
		}
		if ok {
			swept++
		}
	}

	if swept > 0 {
		s.logger.Info("expired reservations swept", "count", swept)
	}
	return swept
}

// expireOne transitions a single reservation to expired and returns its
// quantity to the drop's available pool. The candidate list is a snapshot, so
// the status is re-checked under the row lock; a reservation completed or
// cancelled since the snapshot is skipped without error.
func (s *Sweeper) expireOne(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	var (
		res *reservation.Reservation
		d   *drop.Drop
	)
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error

		res, err = tx.Reservations().GetForUpdate(ctx, id)
		if err != nil {
			return errs.Wrap(err, "failed to lock reservation")
		}
		if !res.IsActive() || !res.HasExpired(now) {
			res = nil
			return nil
		}

		d, err = tx.Drops().GetForUpdate(ctx, res.DropID())
		if err != nil {
			return errs.Wrap(err, "failed to lock drop")
		}

		if err := res.Expire(now); err != nil {
			return errs.Wrap(err, "failed to expire reservation")
		}
		if err := d.Release(res.Quantity()); err != nil {
			s.logger.Error("stock ledger inconsistency detected during sweep",
				"drop_id", d.ID().String(),
				"reservation_id", res.ID().String(),
				"total", d.TotalStock(),
				"available", d.AvailableStock(),
				"sold", d.SoldStock(),
				"reserved", d.ReservedStock())
			return errs.Wrap(err, "failed to release reserved stock")
		}

		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return errs.Wrap(err, "failed to persist reservation status")
		}
		if err := tx.Drops().Update(ctx, d); err != nil {
			return errs.Wrap(err, "failed to persist drop counters")
		}

		return d.CheckInvariant()
	})
	if err != nil {
		return false, err
	}
	if res == nil {
		// Lost the race to a complete or cancel; nothing was changed.
		return false, nil
	}

	s.broadcaster.ReservationExpired(ctx, events.ReservationExpired{
		ReservationID: res.ID(),
		DropID:        res.DropID(),
		UserID:        res.UserID(),
	})
	s.broadcaster.StockRecovered(ctx, events.StockRecovered{
		DropID:         d.ID(),
		AvailableStock: d.AvailableStock(),
		ReservedStock:  d.ReservedStock(),
		Timestamp:      now,
	})

	return true, nil
}
