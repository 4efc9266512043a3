//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"sneakerdrop/internal/domain/reservation"
	"sneakerdrop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, b.DropID, res.DropID())
		assert.Equal(t, b.UserID, res.UserID())
		assert.Equal(t, reservation.StatusActive, res.Status())
		assert.True(t, res.IsActive())
		assert.Equal(t, b.Now.Add(b.TTL), res.ExpiresAt())
		assert.Nil(t, res.CompletedAt())
	})

	t.Run("empty user id", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithUserID("").BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrEmptyUserID)
	})

	t.Run("quantity below one", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithQuantity(0).BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrInvalidQuantity)
	})
}

func TestHasExpired(t *testing.T) {
	b := builder.NewReservationBuilder()
	res, err := b.BuildDomain()
	require.NoError(t, err)

	assert.False(t, res.HasExpired(b.Now))
	assert.False(t, res.HasExpired(res.ExpiresAt()), "expiry instant itself is still valid")
	assert.True(t, res.HasExpired(res.ExpiresAt().Add(time.Nanosecond)))
}

func TestComplete(t *testing.T) {
	t.Run("active within ttl completes", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		completedAt := b.Now.Add(30 * time.Second)
		require.NoError(t, res.Complete(completedAt))
		assert.Equal(t, reservation.StatusCompleted, res.Status())
		require.NotNil(t, res.CompletedAt())
		assert.Equal(t, completedAt, *res.CompletedAt())
	})

	t.Run("expired reservation cannot complete", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		err = res.Complete(res.ExpiresAt().Add(time.Second))
		assert.ErrorIs(t, err, reservation.ErrExpired)
		assert.Equal(t, reservation.StatusActive, res.Status(), "failed transition leaves status untouched")
	})

	t.Run("terminal states reject complete", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Cancel(b.Now))

		assert.ErrorIs(t, res.Complete(b.Now), reservation.ErrNotActive)
	})

	t.Run("completing twice fails", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Complete(b.Now))

		assert.ErrorIs(t, res.Complete(b.Now), reservation.ErrNotActive)
	})
}

func TestCancel(t *testing.T) {
	t.Run("active reservation cancels", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Cancel(b.Now))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("expired but unswept reservation still cancels", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Cancel(res.ExpiresAt().Add(time.Minute)))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("terminal states reject cancel", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Complete(b.Now))

		assert.ErrorIs(t, res.Cancel(b.Now), reservation.ErrNotActive)
	})
}

func TestExpire(t *testing.T) {
	t.Run("active reservation expires", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Expire(res.ExpiresAt().Add(time.Second)))
		assert.Equal(t, reservation.StatusExpired, res.Status())
	})

	t.Run("terminal states reject expire", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Cancel(b.Now))

		assert.ErrorIs(t, res.Expire(b.Now), reservation.ErrNotActive)
	})
}

func TestIsOwnedBy(t *testing.T) {
	b := builder.NewReservationBuilder().WithUserID("user-a")
	res, err := b.BuildDomain()
	require.NoError(t, err)

	assert.True(t, res.IsOwnedBy("user-a"))
	assert.False(t, res.IsOwnedBy("user-b"))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, reservation.StatusActive.IsTerminal())
	assert.True(t, reservation.StatusCompleted.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())
	assert.True(t, reservation.StatusExpired.IsTerminal())
}
