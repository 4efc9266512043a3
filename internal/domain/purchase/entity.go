package purchase

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is the durable record of a completed reservation: who bought what,
// at which price, and when. Written in the same transaction that marks the
// reservation completed.
type Purchase struct {
	ID             uuid.UUID
	ReservationID  uuid.UUID
	DropID         uuid.UUID
	UserID         string
	Quantity       int
	PricePaidCents int64
	CreatedAt      time.Time
}

func New(reservationID, dropID uuid.UUID, userID string, quantity int, pricePaidCents int64, now time.Time) Purchase {
	return Purchase{
		ID:             uuid.New(),
		ReservationID:  reservationID,
		DropID:         dropID,
		UserID:         userID,
		Quantity:       quantity,
		PricePaidCents: pricePaidCents,
		CreatedAt:      now,
	}
}
