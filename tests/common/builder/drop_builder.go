//go:build unit || e2e

package builder

import (
	"time"

	domdrop "sneakerdrop/internal/domain/drop"
	reqdto "sneakerdrop/internal/handler/dto/request"
	"sneakerdrop/internal/usecase/queries"
)

type DropBuilder struct {
	Name        string
	Description string
	SKU         *string
	ImageURL    string
	PriceCents  int64
	TotalStock  int
	StartTime   time.Time
	EndTime     *time.Time
	Brand       *string
	Category    *string
	Now         time.Time
}

// NewDropBuilder defaults to a live drop: the window opened an hour ago and
// closes in an hour.
func NewDropBuilder() *DropBuilder {
	now := time.Now().UTC()
	end := now.Add(time.Hour)
	sku := "AJ1-CHI-2026"
	brand := "Nike"
	category := "sneakers"
	return &DropBuilder{
		Name:        "Air Jordan 1 Retro High",
		Description: "OG colourway restock",
		SKU:         &sku,
		ImageURL:    "https://cdn.example.com/drops/aj1.jpg",
		PriceCents:  18_000,
		TotalStock:  10,
		StartTime:   now.Add(-time.Hour),
		EndTime:     &end,
		Brand:       &brand,
		Category:    &category,
		Now:         now,
	}
}

func (b *DropBuilder) BuildDomain() (*domdrop.Drop, error) {
	return domdrop.NewDrop(
		b.Name, b.Description, b.SKU, b.ImageURL, b.PriceCents, b.TotalStock,
		b.StartTime, b.EndTime, b.Brand, b.Category, b.Now,
	)
}

func (b *DropBuilder) BuildCreateRequestDTO() reqdto.CreateDropRequest {
	return reqdto.CreateDropRequest{
		Name:        b.Name,
		Description: b.Description,
		SKU:         b.SKU,
		ImageURL:    b.ImageURL,
		PriceCents:  b.PriceCents,
		TotalStock:  b.TotalStock,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Brand:       b.Brand,
		Category:    b.Category,
	}
}

func (b *DropBuilder) BuildView() *queries.DropView {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	view := queries.DropViewFromEntity(d, b.Now)
	return &view
}

// Fluent builder methods
func (b *DropBuilder) WithName(name string) *DropBuilder {
	b.Name = name
	return b
}

func (b *DropBuilder) WithImageURL(url string) *DropBuilder {
	b.ImageURL = url
	return b
}

func (b *DropBuilder) WithPriceCents(price int64) *DropBuilder {
	b.PriceCents = price
	return b
}

func (b *DropBuilder) WithTotalStock(stock int) *DropBuilder {
	b.TotalStock = stock
	return b
}

func (b *DropBuilder) WithSKU(sku *string) *DropBuilder {
	b.SKU = sku
	return b
}

func (b *DropBuilder) WithWindow(start time.Time, end *time.Time) *DropBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

// AsUpcoming shifts the window entirely into the future.
func (b *DropBuilder) AsUpcoming() *DropBuilder {
	end := b.Now.Add(2 * time.Hour)
	b.StartTime = b.Now.Add(time.Hour)
	b.EndTime = &end
	return b
}

// AsEnded shifts the window entirely into the past.
func (b *DropBuilder) AsEnded() *DropBuilder {
	end := b.Now.Add(-time.Hour)
	b.StartTime = b.Now.Add(-2 * time.Hour)
	b.EndTime = &end
	return b
}

// AsOpenEnded removes the end of the window.
func (b *DropBuilder) AsOpenEnded() *DropBuilder {
	b.EndTime = nil
	return b
}
