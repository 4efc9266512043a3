package shared

import (
	"context"

	"sneakerdrop/internal/domain/drop"
	"sneakerdrop/internal/domain/purchase"
	"sneakerdrop/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failure
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Drops() DropRepository
	Reservations() ReservationRepository
	Purchases() PurchaseRepository
}

// DropRepository is the write-side surface for drop rows. GetForUpdate takes
// the exclusive row lock every counter mutation happens under.
type DropRepository interface {
	Create(ctx context.Context, d *drop.Drop) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*drop.Drop, error)
	Update(ctx context.Context, d *drop.Drop) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindActiveByDropAndUser(ctx context.Context, dropID uuid.UUID, userID string) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, r *reservation.Reservation) error
}

type PurchaseRepository interface {
	Create(ctx context.Context, p purchase.Purchase) error
}
