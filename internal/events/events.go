package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event names on the wire. Stock events also fan out to the per-drop channel
// so observers can subscribe to a single drop.
const (
	TypeReservationCreated   = "reservation-created"
	TypeReservationCompleted = "reservation-completed"
	TypeReservationExpired   = "reservation-expired"
	TypeStockUpdated         = "stock-updated"
	TypeStockRecovered       = "stock-recovered"
	TypeDropCreated          = "drop-created"
	TypeDropUpdated          = "drop-updated"
	TypeDropDeleted          = "drop-deleted"
)

type ReservationCreated struct {
	ReservationID uuid.UUID `json:"reservationId"`
	DropID        uuid.UUID `json:"dropId"`
	UserID        string    `json:"userId"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type ReservationCompleted struct {
	ReservationID uuid.UUID `json:"reservationId"`
	DropID        uuid.UUID `json:"dropId"`
	UserID        string    `json:"userId"`
	CompletedAt   time.Time `json:"completedAt"`
}

type ReservationExpired struct {
	ReservationID uuid.UUID `json:"reservationId"`
	DropID        uuid.UUID `json:"dropId"`
	UserID        string    `json:"userId"`
}

type StockUpdated struct {
	DropID         uuid.UUID `json:"dropId"`
	TotalStock     int       `json:"totalStock"`
	AvailableStock int       `json:"availableStock"`
	SoldStock      int       `json:"soldStock"`
	ReservedStock  int       `json:"reservedStock"`
	Timestamp      time.Time `json:"timestamp"`
}

type StockRecovered struct {
	DropID         uuid.UUID `json:"dropId"`
	AvailableStock int       `json:"availableStock"`
	ReservedStock  int       `json:"reservedStock"`
	Timestamp      time.Time `json:"timestamp"`
}

type DropCreated struct {
	DropID         uuid.UUID  `json:"dropId"`
	Name           string     `json:"name"`
	PriceCents     int64      `json:"priceCents"`
	TotalStock     int        `json:"totalStock"`
	AvailableStock int        `json:"availableStock"`
	StartTime      time.Time  `json:"dropStartTime"`
	EndTime        *time.Time `json:"dropEndTime,omitempty"`
	Status         string     `json:"status"`
	Timestamp      time.Time  `json:"timestamp"`
}

type DropUpdated struct {
	DropID         uuid.UUID  `json:"dropId"`
	Name           string     `json:"name"`
	PriceCents     int64      `json:"priceCents"`
	TotalStock     int        `json:"totalStock"`
	AvailableStock int        `json:"availableStock"`
	StartTime      time.Time  `json:"dropStartTime"`
	EndTime        *time.Time `json:"dropEndTime,omitempty"`
	Status         string     `json:"status"`
	Timestamp      time.Time  `json:"timestamp"`
}

type DropDeleted struct {
	DropID    uuid.UUID `json:"dropId"`
	Timestamp time.Time `json:"timestamp"`
}

// Broadcaster fans lifecycle and stock notifications out to observers.
// Delivery is best-effort: implementations log failures and never surface
// them, so a broadcast problem cannot affect a committed transaction. Calls
// are made synchronously after commit from the task that committed, which
// keeps per-drop delivery in commit order.
type Broadcaster interface {
	ReservationCreated(ctx context.Context, ev ReservationCreated)
	ReservationCompleted(ctx context.Context, ev ReservationCompleted)
	ReservationExpired(ctx context.Context, ev ReservationExpired)
	StockUpdated(ctx context.Context, ev StockUpdated)
	StockRecovered(ctx context.Context, ev StockRecovered)
	DropCreated(ctx context.Context, ev DropCreated)
	DropUpdated(ctx context.Context, ev DropUpdated)
	DropDeleted(ctx context.Context, ev DropDeleted)
}
