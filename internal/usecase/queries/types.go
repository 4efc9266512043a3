package queries

import (
	"time"

	"github.com/google/uuid"
)

// DropView is the read model for a single drop, status derived at read time.
type DropView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	SKU            *string    `json:"sku,omitempty"`
	ImageURL       string     `json:"imageUrl"`
	PriceCents     int64      `json:"priceCents"`
	TotalStock     int        `json:"totalStock"`
	AvailableStock int        `json:"availableStock"`
	SoldStock      int        `json:"soldStock"`
	ReservedStock  int        `json:"reservedStock"`
	StartTime      time.Time  `json:"dropStartTime"`
	EndTime        *time.Time `json:"dropEndTime,omitempty"`
	IsActive       bool       `json:"isActive"`
	Brand          *string    `json:"brand,omitempty"`
	Category       *string    `json:"category,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// DropSummary is the minimal drop projection joined onto reservation lists.
type DropSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ImageURL       string    `json:"imageUrl"`
	PriceCents     int64     `json:"priceCents"`
	AvailableStock int       `json:"availableStock"`
	Brand          *string   `json:"brand,omitempty"`
}

type ActiveReservationView struct {
	ID        uuid.UUID   `json:"id"`
	DropID    uuid.UUID   `json:"dropId"`
	UserID    string      `json:"userId"`
	Quantity  int         `json:"quantity"`
	Status    string      `json:"status"`
	ExpiresAt time.Time   `json:"expiresAt"`
	CreatedAt time.Time   `json:"createdAt"`
	Drop      DropSummary `json:"drop"`
}

// DropRecord is the raw drops projection as stored; field order matches the
// read-store select list. Status is derived on top of it at read time.
type DropRecord struct {
	ID             uuid.UUID
	Name           string
	Description    string
	SKU            *string
	ImageURL       string
	PriceCents     int64
	TotalStock     int
	AvailableStock int
	SoldStock      int
	ReservedStock  int
	StartTime      time.Time
	EndTime        *time.Time
	IsActive       bool
	Brand          *string
	Category       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DropFilter narrows the drop list. Zero values mean no filtering.
type DropFilter struct {
	Status   string
	Brand    string
	Category string
	IsActive *bool
}
