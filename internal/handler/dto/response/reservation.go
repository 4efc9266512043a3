package response

import (
	"time"

	"sneakerdrop/internal/usecase/commands"
	"sneakerdrop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID      `json:"id"`
	DropID      uuid.UUID      `json:"dropId"`
	UserID      string         `json:"userId"`
	Quantity    int            `json:"quantity"`
	Status      string         `json:"status"`
	ExpiresAt   time.Time      `json:"expiresAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Stock       *StockResponse `json:"stock,omitempty"`
}

// StockResponse echoes the drop counters after the command committed so
// clients can render availability without a second round trip.
type StockResponse struct {
	DropID         uuid.UUID `json:"dropId"`
	TotalStock     int       `json:"totalStock"`
	AvailableStock int       `json:"availableStock"`
	SoldStock      int       `json:"soldStock"`
	ReservedStock  int       `json:"reservedStock"`
}

type ActiveReservationResponse struct {
	ID        uuid.UUID           `json:"id"`
	DropID    uuid.UUID           `json:"dropId"`
	Quantity  int                 `json:"quantity"`
	Status    string              `json:"status"`
	ExpiresAt time.Time           `json:"expiresAt"`
	CreatedAt time.Time           `json:"createdAt"`
	Drop      DropSummaryResponse `json:"drop"`
}

type DropSummaryResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ImageURL       string    `json:"imageUrl"`
	PriceCents     int64     `json:"priceCents"`
	AvailableStock int       `json:"availableStock"`
	Brand          *string   `json:"brand,omitempty"`
}

func FromReservationResult(r *commands.ReservationResult) *ReservationResponse {
	return &ReservationResponse{
		ID:          r.Reservation.ID,
		DropID:      r.Reservation.DropID,
		UserID:      r.Reservation.UserID,
		Quantity:    r.Reservation.Quantity,
		Status:      r.Reservation.Status,
		ExpiresAt:   r.Reservation.ExpiresAt,
		CompletedAt: r.Reservation.CompletedAt,
		CreatedAt:   r.Reservation.CreatedAt,
		Stock: &StockResponse{
			DropID:         r.Stock.DropID,
			TotalStock:     r.Stock.TotalStock,
			AvailableStock: r.Stock.AvailableStock,
			SoldStock:      r.Stock.SoldStock,
			ReservedStock:  r.Stock.ReservedStock,
		},
	}
}

func FromActiveReservationView(v *queries.ActiveReservationView) *ActiveReservationResponse {
	return &ActiveReservationResponse{
		ID:        v.ID,
		DropID:    v.DropID,
		Quantity:  v.Quantity,
		Status:    v.Status,
		ExpiresAt: v.ExpiresAt,
		CreatedAt: v.CreatedAt,
		Drop: DropSummaryResponse{
			ID:             v.Drop.ID,
			Name:           v.Drop.Name,
			ImageURL:       v.Drop.ImageURL,
			PriceCents:     v.Drop.PriceCents,
			AvailableStock: v.Drop.AvailableStock,
			Brand:          v.Drop.Brand,
		},
	}
}
