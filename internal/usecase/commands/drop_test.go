//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sneakerdrop/internal/events"
	"sneakerdrop/internal/pkg/clock"
	"sneakerdrop/internal/usecase/commands"
	"sneakerdrop/tests/common/builder"
	"sneakerdrop/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dropFixture struct {
	uow         *fake.UnitOfWork
	broadcaster *fake.Broadcaster
	cmds        commands.DropCommands
	clock       *clock.MockClock
}

func newDropFixture(t *testing.T) *dropFixture {
	t.Helper()
	u := fake.NewUnitOfWork()
	b := fake.NewBroadcaster()
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	return &dropFixture{
		uow:         u,
		broadcaster: b,
		cmds:        commands.NewDropCommands(u, b, clk),
		clock:       clk,
	}
}

func TestCreateDrop(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a drop with full available stock", func(t *testing.T) {
		f := newDropFixture(t)
		b := builder.NewDropBuilder().WithTotalStock(25)

		view, err := f.cmds.CreateDrop(ctx, commands.CreateDropInput{
			Name:        b.Name,
			Description: b.Description,
			SKU:         b.SKU,
			ImageURL:    b.ImageURL,
			PriceCents:  b.PriceCents,
			TotalStock:  b.TotalStock,
			StartTime:   f.clock.Now().Add(-time.Minute),
			EndTime:     nil,
			Brand:       b.Brand,
			Category:    b.Category,
		})
		require.NoError(t, err)

		assert.Equal(t, 25, view.TotalStock)
		assert.Equal(t, 25, view.AvailableStock)
		assert.Equal(t, 0, view.SoldStock)
		assert.Equal(t, 0, view.ReservedStock)
		assert.Equal(t, "live", view.Status)
		assert.True(t, view.IsActive)

		stored := f.uow.DropRepo.Get(view.ID)
		require.NotNil(t, stored)
		assert.NoError(t, stored.CheckInvariant())

		require.Len(t, f.broadcaster.Drops, 1)
		assert.Equal(t, view.ID, f.broadcaster.Drops[0].DropID)
		assert.Equal(t, "live", f.broadcaster.Drops[0].Status)
		assert.Equal(t, []string{events.TypeDropCreated}, f.broadcaster.Order)
	})

	t.Run("invalid attributes are rejected", func(t *testing.T) {
		f := newDropFixture(t)
		b := builder.NewDropBuilder()

		_, err := f.cmds.CreateDrop(ctx, commands.CreateDropInput{
			Name:       "ab",
			ImageURL:   b.ImageURL,
			PriceCents: b.PriceCents,
			TotalStock: b.TotalStock,
			StartTime:  f.clock.Now(),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidDrop)
		assert.Empty(t, f.broadcaster.Order)
	})

	t.Run("duplicate sku is rejected", func(t *testing.T) {
		f := newDropFixture(t)
		b := builder.NewDropBuilder()

		input := commands.CreateDropInput{
			Name:       b.Name,
			SKU:        b.SKU,
			ImageURL:   b.ImageURL,
			PriceCents: b.PriceCents,
			TotalStock: b.TotalStock,
			StartTime:  f.clock.Now(),
		}
		_, err := f.cmds.CreateDrop(ctx, input)
		require.NoError(t, err)

		_, err = f.cmds.CreateDrop(ctx, input)
		assert.ErrorIs(t, err, commands.ErrDuplicateSKU)
		// Only the first create is announced.
		assert.Len(t, f.broadcaster.Drops, 1)
	})
}

func TestUpdateDrop(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }
	int64Ptr := func(n int64) *int64 { return &n }

	t.Run("updates changed fields and announces the change", func(t *testing.T) {
		f := newDropFixture(t)
		d, err := builder.NewDropBuilder().BuildDomain()
		require.NoError(t, err)
		f.uow.DropRepo.Seed(d)

		view, err := f.cmds.UpdateDrop(ctx, d.ID(), commands.UpdateDropInput{
			Name:       strPtr("Air Max 97 Silver Bullet"),
			PriceCents: int64Ptr(21000),
		})
		require.NoError(t, err)

		assert.Equal(t, "Air Max 97 Silver Bullet", view.Name)
		assert.Equal(t, int64(21000), view.PriceCents)
		// Untouched fields survive.
		assert.Equal(t, d.ImageURL(), view.ImageURL)
		assert.Equal(t, d.TotalStock(), view.TotalStock)

		stored := f.uow.DropRepo.Get(d.ID())
		assert.Equal(t, "Air Max 97 Silver Bullet", stored.Name())
		assert.Equal(t, f.clock.Now(), stored.UpdatedAt())

		require.Len(t, f.broadcaster.Updates, 1)
		assert.Equal(t, d.ID(), f.broadcaster.Updates[0].DropID)
		assert.Equal(t, "Air Max 97 Silver Bullet", f.broadcaster.Updates[0].Name)
		assert.Equal(t, []string{events.TypeDropUpdated}, f.broadcaster.Order)
	})

	t.Run("invalid attributes roll back without an event", func(t *testing.T) {
		f := newDropFixture(t)
		d, err := builder.NewDropBuilder().BuildDomain()
		require.NoError(t, err)
		f.uow.DropRepo.Seed(d)

		_, err = f.cmds.UpdateDrop(ctx, d.ID(), commands.UpdateDropInput{
			Name: strPtr("ab"),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidDrop)

		stored := f.uow.DropRepo.Get(d.ID())
		assert.Equal(t, d.Name(), stored.Name())
		assert.Empty(t, f.broadcaster.Order)
	})

	t.Run("unknown drop", func(t *testing.T) {
		f := newDropFixture(t)
		_, err := f.cmds.UpdateDrop(ctx, uuid.New(), commands.UpdateDropInput{
			Name: strPtr("Jordan 1 Chicago"),
		})
		assert.ErrorIs(t, err, commands.ErrDropNotFound)
		assert.Empty(t, f.broadcaster.Order)
	})
}

func TestDeactivateDrop(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates an existing drop and announces the removal", func(t *testing.T) {
		f := newDropFixture(t)
		d, err := builder.NewDropBuilder().BuildDomain()
		require.NoError(t, err)
		f.uow.DropRepo.Seed(d)

		require.NoError(t, f.cmds.DeactivateDrop(ctx, d.ID()))

		stored := f.uow.DropRepo.Get(d.ID())
		assert.False(t, stored.IsActive())

		require.Len(t, f.broadcaster.Deletes, 1)
		assert.Equal(t, d.ID(), f.broadcaster.Deletes[0].DropID)
		assert.Equal(t, []string{events.TypeDropDeleted}, f.broadcaster.Order)
	})

	t.Run("unknown drop", func(t *testing.T) {
		f := newDropFixture(t)
		err := f.cmds.DeactivateDrop(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrDropNotFound)
		assert.Empty(t, f.broadcaster.Order)
	})
}
