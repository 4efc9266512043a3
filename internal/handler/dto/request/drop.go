package request

import (
	"strings"
	"time"

	"sneakerdrop/internal/usecase/commands"
	"sneakerdrop/internal/usecase/queries"
)

type CreateDropRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	SKU         *string    `json:"sku,omitempty"`
	ImageURL    string     `json:"imageUrl" binding:"required"`
	PriceCents  int64      `json:"priceCents" binding:"required"`
	TotalStock  int        `json:"totalStock" binding:"required"`
	StartTime   time.Time  `json:"dropStartTime" binding:"required"`
	EndTime     *time.Time `json:"dropEndTime,omitempty"`
	Brand       *string    `json:"brand,omitempty"`
	Category    *string    `json:"category,omitempty"`
}

func (r CreateDropRequest) ToInput() commands.CreateDropInput {
	return commands.CreateDropInput{
		Name:        r.Name,
		Description: r.Description,
		SKU:         trimmedOrNil(r.SKU),
		ImageURL:    r.ImageURL,
		PriceCents:  r.PriceCents,
		TotalStock:  r.TotalStock,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Brand:       trimmedOrNil(r.Brand),
		Category:    trimmedOrNil(r.Category),
	}
}

// UpdateDropRequest is a partial update: absent fields are left unchanged.
type UpdateDropRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	PriceCents  *int64     `json:"priceCents,omitempty"`
	StartTime   *time.Time `json:"dropStartTime,omitempty"`
	EndTime     *time.Time `json:"dropEndTime,omitempty"`
	Brand       *string    `json:"brand,omitempty"`
	Category    *string    `json:"category,omitempty"`
}

func (r UpdateDropRequest) ToInput() commands.UpdateDropInput {
	return commands.UpdateDropInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		PriceCents:  r.PriceCents,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Brand:       trimmedOrNil(r.Brand),
		Category:    trimmedOrNil(r.Category),
	}
}

type ListDropsQuery struct {
	Status   string `form:"status"`
	Brand    string `form:"brand"`
	Category string `form:"category"`
	IsActive *bool  `form:"is_active"`
}

func (q ListDropsQuery) ToFilter() queries.DropFilter {
	return queries.DropFilter{
		Status:   strings.TrimSpace(q.Status),
		Brand:    strings.TrimSpace(q.Brand),
		Category: strings.TrimSpace(q.Category),
		IsActive: q.IsActive,
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
