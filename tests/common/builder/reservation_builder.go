//go:build unit || e2e

package builder

import (
	"time"

	domreservation "sneakerdrop/internal/domain/reservation"
	"sneakerdrop/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	DropID   uuid.UUID
	UserID   string
	Quantity int
	TTL      time.Duration
	Now      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		DropID:   uuid.New(),
		UserID:   "user-7f3a",
		Quantity: 1,
		TTL:      60 * time.Second,
		Now:      time.Now().UTC(),
	}
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(b.DropID, b.UserID, b.Quantity, b.TTL, b.Now)
}

func (b *ReservationBuilder) BuildResult() *commands.ReservationResult {
	res, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return &commands.ReservationResult{
		Reservation: commands.ReservationData{
			ID:        res.ID(),
			DropID:    res.DropID(),
			UserID:    res.UserID(),
			Quantity:  res.Quantity(),
			Status:    res.Status().String(),
			ExpiresAt: res.ExpiresAt(),
			CreatedAt: res.CreatedAt(),
		},
		Stock: commands.StockData{
			DropID:         res.DropID(),
			TotalStock:     10,
			AvailableStock: 9,
			SoldStock:      0,
			ReservedStock:  1,
		},
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithDropID(id uuid.UUID) *ReservationBuilder {
	b.DropID = id
	return b
}

func (b *ReservationBuilder) WithUserID(userID string) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithQuantity(quantity int) *ReservationBuilder {
	b.Quantity = quantity
	return b
}

func (b *ReservationBuilder) WithTTL(ttl time.Duration) *ReservationBuilder {
	b.TTL = ttl
	return b
}

func (b *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	b.Now = now
	return b
}
