package response

import (
	"time"

	"sneakerdrop/internal/usecase/queries"

	"github.com/google/uuid"
)

type DropResponse struct {
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

func FromDropView(v *queries.DropView) *DropResponse {
	return &DropResponse{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		SKU:            v.SKU,
		ImageURL:       v.ImageURL,
		PriceCents:     v.PriceCents,
		TotalStock:     v.TotalStock,
		AvailableStock: v.AvailableStock,
		SoldStock:      v.SoldStock,
		ReservedStock:  v.ReservedStock,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		IsActive:       v.IsActive,
		Brand:          v.Brand,
		Category:       v.Category,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromDropViews(views []queries.DropView) []*DropResponse {
	out := make([]*DropResponse, len(views))
	for i := range views {
		out[i] = FromDropView(&views[i])
	}
	return out
}
