//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sneakerdrop/internal/domain/drop"
	"sneakerdrop/internal/domain/reservation"
	"sneakerdrop/internal/events"
	"sneakerdrop/internal/pkg/clock"
	"sneakerdrop/internal/usecase/commands"
	"sneakerdrop/tests/common/builder"
	"sneakerdrop/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 60 * time.Second

type fixture struct {
	uow         *fake.UnitOfWork
	broadcaster *fake.Broadcaster
	clock       *clock.MockClock
	commands    commands.ReservationCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	u := fake.NewUnitOfWork()
	b := fake.NewBroadcaster()
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	return &fixture{
		uow:         u,
		broadcaster: b,
		clock:       clk,
		commands:    commands.NewReservationCommands(u, b, clk, ttl),
	}
}

func (f *fixture) seedLiveDrop(t *testing.T, stock int) *drop.Drop {
	t.Helper()
	end := f.clock.Now().Add(time.Hour)
	d, err := builder.NewDropBuilder().
		WithTotalStock(stock).
		WithWindow(f.clock.Now().Add(-time.Hour), &end).
		BuildDomain()
	require.NoError(t, err)
	f.uow.DropRepo.Seed(d)
	return d
}

func (f *fixture) checkLedger(t *testing.T, dropID uuid.UUID) {
	t.Helper()
	stored := f.uow.DropRepo.Get(dropID)
	require.NotNil(t, stored)
	assert.NoError(t, stored.CheckInvariant())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves a unit on a live drop", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		result, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)

		assert.Equal(t, "active", result.Reservation.Status)
		assert.Equal(t, 1, result.Reservation.Quantity)
		assert.Equal(t, f.clock.Now().Add(ttl), result.Reservation.ExpiresAt)
		assert.Equal(t, 9, result.Stock.AvailableStock)
		assert.Equal(t, 1, result.Stock.ReservedStock)
		f.checkLedger(t, d.ID())

		require.Len(t, f.broadcaster.Created, 1)
		require.Len(t, f.broadcaster.Stock, 1)
		assert.Equal(t, []string{events.TypeReservationCreated, events.TypeStockUpdated}, f.broadcaster.Order)
		assert.Equal(t, result.Reservation.ID, f.broadcaster.Created[0].ReservationID)
	})

	t.Run("unknown drop", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.commands.Create(ctx, uuid.New(), "user-1")
		assert.ErrorIs(t, err, commands.ErrDropNotFound)
		assert.Empty(t, f.broadcaster.Order)
	})

	t.Run("upcoming drop is not reservable", func(t *testing.T) {
		f := newFixture(t)
		end := f.clock.Now().Add(2 * time.Hour)
		d, err := builder.NewDropBuilder().
			WithWindow(f.clock.Now().Add(time.Hour), &end).
			BuildDomain()
		require.NoError(t, err)
		f.uow.DropRepo.Seed(d)

		_, err = f.commands.Create(ctx, d.ID(), "user-1")
		assert.ErrorIs(t, err, commands.ErrDropNotAvailable)
	})

	t.Run("ended drop is not reservable", func(t *testing.T) {
		f := newFixture(t)
		end := f.clock.Now().Add(-time.Hour)
		d, err := builder.NewDropBuilder().
			WithWindow(f.clock.Now().Add(-2*time.Hour), &end).
			BuildDomain()
		require.NoError(t, err)
		f.uow.DropRepo.Seed(d)

		_, err = f.commands.Create(ctx, d.ID(), "user-1")
		assert.ErrorIs(t, err, commands.ErrDropNotAvailable)
	})

	t.Run("deactivated drop is not reservable", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)
		d.Deactivate()
		f.uow.DropRepo.Seed(d)

		_, err := f.commands.Create(ctx, d.ID(), "user-1")
		assert.ErrorIs(t, err, commands.ErrDropNotAvailable)
	})

	t.Run("sold out drop", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 1)

		_, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)

		_, err = f.commands.Create(ctx, d.ID(), "user-2")
		assert.ErrorIs(t, err, commands.ErrInsufficientStock)
		f.checkLedger(t, d.ID())
	})

	t.Run("zero stock drop", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 0)

		_, err := f.commands.Create(ctx, d.ID(), "user-1")
		assert.ErrorIs(t, err, commands.ErrInsufficientStock)
	})

	t.Run("second active reservation for same user is rejected", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		_, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)

		_, err = f.commands.Create(ctx, d.ID(), "user-1")
		assert.ErrorIs(t, err, commands.ErrDuplicateReservation)

		stored := f.uow.DropRepo.Get(d.ID())
		assert.Equal(t, 9, stored.AvailableStock(), "failed create must not leak stock")
		f.checkLedger(t, d.ID())
	})

	t.Run("same user can reserve again after cancelling", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		first, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)
		_, err = f.commands.Cancel(ctx, first.Reservation.ID, "user-1")
		require.NoError(t, err)

		_, err = f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)
		f.checkLedger(t, d.ID())
	})
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("completes an active reservation and records the purchase", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)

		f.clock.Advance(30 * time.Second)
		result, err := f.commands.Complete(ctx, created.Reservation.ID, "user-1")
		require.NoError(t, err)

		assert.Equal(t, "completed", result.Reservation.Status)
		require.NotNil(t, result.Reservation.CompletedAt)
		assert.Equal(t, 9, result.Stock.AvailableStock)
		assert.Equal(t, 1, result.Stock.SoldStock)
		assert.Equal(t, 0, result.Stock.ReservedStock)
		f.checkLedger(t, d.ID())

		require.Len(t, f.uow.PurchaseRepo.Purchases, 1)
		p := f.uow.PurchaseRepo.Purchases[0]
		assert.Equal(t, created.Reservation.ID, p.ReservationID)
		assert.Equal(t, d.ID(), p.DropID)
		assert.Equal(t, "user-1", p.UserID)
		assert.Equal(t, d.PriceCents(), p.PricePaidCents)

		require.Len(t, f.broadcaster.Completed, 1)
		assert.Equal(t, events.TypeReservationCompleted, f.broadcaster.Order[len(f.broadcaster.Order)-2])
		assert.Equal(t, events.TypeStockUpdated, f.broadcaster.Order[len(f.broadcaster.Order)-1])
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.commands.Complete(ctx, uuid.New(), "user-1")
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("different user is forbidden", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)

		_, err = f.commands.Complete(ctx, created.Reservation.ID, "user-2")
		assert.ErrorIs(t, err, commands.ErrForbidden)

		stored := f.uow.ReservationRepo.Get(created.Reservation.ID)
		assert.Equal(t, reservation.StatusActive, stored.Status())
	})

	t.Run("expired reservation cannot complete", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)

		f.clock.Advance(ttl + time.Second)
		_, err = f.commands.Complete(ctx, created.Reservation.ID, "user-1")
		assert.ErrorIs(t, err, commands.ErrReservationExpired)

		// The unit stays reserved until the sweeper reclaims it.
		stored := f.uow.DropRepo.Get(d.ID())
		assert.Equal(t, 1, stored.ReservedStock())
		f.checkLedger(t, d.ID())
	})

	t.Run("cancelled reservation cannot complete", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)
		_, err = f.commands.Cancel(ctx, created.Reservation.ID, "user-1")
		require.NoError(t, err)

		_, err = f.commands.Complete(ctx, created.Reservation.ID, "user-1")
		assert.ErrorIs(t, err, commands.ErrInvalidState)
	})

	t.Run("completing twice fails and writes one purchase", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)
		_, err = f.commands.Complete(ctx, created.Reservation.ID, "user-1")
		require.NoError(t, err)

		_, err = f.commands.Complete(ctx, created.Reservation.ID, "user-1")
		assert.ErrorIs(t, err, commands.ErrInvalidState)
		assert.Len(t, f.uow.PurchaseRepo.Purchases, 1)
		f.checkLedger(t, d.ID())
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels an active reservation and recovers stock", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)

		result, err := f.commands.Cancel(ctx, created.Reservation.ID, "user-1")
		require.NoError(t, err)

		assert.Equal(t, "cancelled", result.Reservation.Status)
		assert.Equal(t, 10, result.Stock.AvailableStock)
		assert.Equal(t, 0, result.Stock.ReservedStock)
		f.checkLedger(t, d.ID())

		require.Len(t, f.broadcaster.Recovered, 1)
		assert.Equal(t, events.TypeStockRecovered, f.broadcaster.Order[len(f.broadcaster.Order)-1])
		assert.Empty(t, f.broadcaster.Completed)
	})

	t.Run("expired but unswept reservation still cancels", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)

		f.clock.Advance(ttl + time.Minute)
		result, err := f.commands.Cancel(ctx, created.Reservation.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", result.Reservation.Status)
		assert.Equal(t, 10, result.Stock.AvailableStock)
		f.checkLedger(t, d.ID())
	})

	t.Run("different user is forbidden", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)

		_, err = f.commands.Cancel(ctx, created.Reservation.ID, "user-2")
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("completed reservation cannot cancel", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)
		_, err = f.commands.Complete(ctx, created.Reservation.ID, "user-1")
		require.NoError(t, err)

		_, err = f.commands.Cancel(ctx, created.Reservation.ID, "user-1")
		assert.ErrorIs(t, err, commands.ErrInvalidState)

		stored := f.uow.DropRepo.Get(d.ID())
		assert.Equal(t, 1, stored.SoldStock(), "failed cancel must not touch sold stock")
		f.checkLedger(t, d.ID())
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		f := newFixture(t)
		d := f.seedLiveDrop(t, 10)

		created, err := f.commands.Create(ctx, d.ID(), "user-1")
		require.NoError(t, err)
		_, err = f.commands.Cancel(ctx, created.Reservation.ID, "user-1")
		require.NoError(t, err)

		_, err = f.commands.Cancel(ctx, created.Reservation.ID, "user-1")
		assert.ErrorIs(t, err, commands.ErrInvalidState)

		stored := f.uow.DropRepo.Get(d.ID())
		assert.Equal(t, 10, stored.AvailableStock(), "stock is recovered exactly once")
	})
}

// Full lifecycle across several users against a small drop: the ledger must
// balance after every step and sold units must never exceed total stock.
func TestLedgerUnderMixedTraffic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	d := f.seedLiveDrop(t, 3)

	r1, err := f.commands.Create(ctx, d.ID(), "user-1")
	require.NoError(t, err)
	r2, err := f.commands.Create(ctx, d.ID(), "user-2")
	require.NoError(t, err)
	r3, err := f.commands.Create(ctx, d.ID(), "user-3")
	require.NoError(t, err)

	_, err = f.commands.Create(ctx, d.ID(), "user-4")
	require.ErrorIs(t, err, commands.ErrInsufficientStock)

	_, err = f.commands.Complete(ctx, r1.Reservation.ID, "user-1")
	require.NoError(t, err)
	_, err = f.commands.Cancel(ctx, r2.Reservation.ID, "user-2")
	require.NoError(t, err)

	// The cancelled unit is available again.
	r4, err := f.commands.Create(ctx, d.ID(), "user-4")
	require.NoError(t, err)

	_, err = f.commands.Complete(ctx, r3.Reservation.ID, "user-3")
	require.NoError(t, err)
	_, err = f.commands.Complete(ctx, r4.Reservation.ID, "user-4")
	require.NoError(t, err)

	stored := f.uow.DropRepo.Get(d.ID())
	assert.Equal(t, 3, stored.SoldStock())
	assert.Equal(t, 0, stored.AvailableStock())
	assert.Equal(t, 0, stored.ReservedStock())
	assert.NoError(t, stored.CheckInvariant())
}
