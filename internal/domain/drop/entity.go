package drop

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errors.New("drop name must be between 3 and 255 characters")
	ErrInvalidImageURL    = errors.New("image url must be a valid absolute url")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrNegativeStock      = errors.New("stock counters cannot be negative")
	ErrInvalidTimeWindow  = errors.New("drop end time must be after drop start time")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInsufficientStock  = errors.New("insufficient available stock")
	ErrStockInconsistency = errors.New("reserved stock does not cover requested transition")
)

// Drop is a time-boxed, stock-limited sellable item. It owns the four stock
// counters and every counter transition; callers persist the result while
// holding an exclusive lock on the drop row.
type Drop struct {
	id             uuid.UUID
	name           string
	description    string
	sku            *string
	imageURL       string
	priceCents     int64
	totalStock     int
	availableStock int
	soldStock      int
	reservedStock  int
	startTime      time.Time
	endTime        *time.Time
	isActive       bool
	brand          *string
	category       *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewDrop(
	name, description string,
	sku *string,
	imageURL string,
	priceCents int64,
	totalStock int,
	startTime time.Time,
	endTime *time.Time,
	brand, category *string,
	now time.Time,
) (*Drop, error) {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 255 {
		return nil, ErrInvalidName
	}
	if u, err := url.Parse(imageURL); err != nil || !u.IsAbs() {
		return nil, ErrInvalidImageURL
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if totalStock < 0 {
		return nil, ErrNegativeStock
	}
	if endTime != nil && !endTime.After(startTime) {
		return nil, ErrInvalidTimeWindow
	}

	return &Drop{
		id:             uuid.New(),
		name:           name,
		description:    description,
		sku:            sku,
		imageURL:       imageURL,
		priceCents:     priceCents,
		totalStock:     totalStock,
		availableStock: totalStock,
		soldStock:      0,
		reservedStock:  0,
		startTime:      startTime,
		endTime:        endTime,
		isActive:       true,
		brand:          brand,
		category:       category,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, description string,
	sku *string,
	imageURL string,
	priceCents int64,
	totalStock, availableStock, soldStock, reservedStock int,
	startTime time.Time,
	endTime *time.Time,
	isActive bool,
	brand, category *string,
	createdAt, updatedAt time.Time,
) *Drop {
	return &Drop{
		id:             id,
		name:           name,
		description:    description,
		sku:            sku,
		imageURL:       imageURL,
		priceCents:     priceCents,
		totalStock:     totalStock,
		availableStock: availableStock,
		soldStock:      soldStock,
		reservedStock:  reservedStock,
		startTime:      startTime,
		endTime:        endTime,
		isActive:       isActive,
		brand:          brand,
		category:       category,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// StatusAt derives the lifecycle status from the time window. A deactivated
// drop reads as cancelled regardless of the window.
func (d *Drop) StatusAt(now time.Time) Status {
	if !d.isActive {
		return StatusCancelled
	}
	if now.Before(d.startTime) {
		return StatusUpcoming
	}
	if d.endTime != nil && !now.Before(*d.endTime) {
		return StatusEnded
	}
	return StatusLive
}

func (d *Drop) IsLive(now time.Time) bool {
	return d.StatusAt(now) == StatusLive
}

// Reserve moves qty units from available to reserved.
func (d *Drop) Reserve(qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if d.availableStock < qty {
		return ErrInsufficientStock
	}
	d.availableStock -= qty
	d.reservedStock += qty
	return nil
}

// CompleteSale moves qty units from reserved to sold. A shortfall in reserved
// stock means the ledger and reservation bookkeeping disagree; the caller must
// roll back rather than guess a correction.
func (d *Drop) CompleteSale(qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if d.reservedStock < qty {
		return ErrStockInconsistency
	}
	d.reservedStock -= qty
	d.soldStock += qty
	return nil
}

// Release returns qty reserved units to the available pool. Used by both
// cancellation and expiry reclaim.
func (d *Drop) Release(qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if d.reservedStock < qty {
		return ErrStockInconsistency
	}
	d.reservedStock -= qty
	d.availableStock += qty
	return nil
}

// CheckInvariant verifies total = available + sold + reserved with all
// counters non-negative.
func (d *Drop) CheckInvariant() error {
	if d.totalStock < 0 || d.availableStock < 0 || d.soldStock < 0 || d.reservedStock < 0 {
		return ErrNegativeStock
	}
	if d.totalStock != d.availableStock+d.soldStock+d.reservedStock {
		return ErrStockInconsistency
	}
	return nil
}

func (d *Drop) Deactivate() {
	d.isActive = false
}

// Update carries the fields drop management may change after creation. Nil
// means unchanged. Stock counters are deliberately absent: those only move
// through the ledger transitions above.
type Update struct {
	Name        *string
	Description *string
	ImageURL    *string
	PriceCents  *int64
	StartTime   *time.Time
	EndTime     *time.Time
	Brand       *string
	Category    *string
}

// ApplyUpdate validates the changed fields against the same rules as NewDrop
// and applies them. The entity is left untouched on error.
func (d *Drop) ApplyUpdate(u Update, now time.Time) error {
	name := d.name
	if u.Name != nil {
		name = strings.TrimSpace(*u.Name)
		if len(name) < 3 || len(name) > 255 {
			return ErrInvalidName
		}
	}
	imageURL := d.imageURL
	if u.ImageURL != nil {
		if parsed, err := url.Parse(*u.ImageURL); err != nil || !parsed.IsAbs() {
			return ErrInvalidImageURL
		}
		imageURL = *u.ImageURL
	}
	priceCents := d.priceCents
	if u.PriceCents != nil {
		if *u.PriceCents < 0 {
			return ErrNegativePrice
		}
		priceCents = *u.PriceCents
	}
	startTime := d.startTime
	if u.StartTime != nil {
		startTime = *u.StartTime
	}
	endTime := d.endTime
	if u.EndTime != nil {
		endTime = u.EndTime
	}
	if endTime != nil && !endTime.After(startTime) {
		return ErrInvalidTimeWindow
	}

	d.name = name
	d.imageURL = imageURL
	d.priceCents = priceCents
	d.startTime = startTime
	d.endTime = endTime
	if u.Description != nil {
		d.description = *u.Description
	}
	if u.Brand != nil {
		d.brand = u.Brand
	}
	if u.Category != nil {
		d.category = u.Category
	}
	d.updatedAt = now
	return nil
}

func (d *Drop) ID() uuid.UUID        { return d.id }
func (d *Drop) Name() string         { return d.name }
func (d *Drop) Description() string  { return d.description }
func (d *Drop) SKU() *string         { return d.sku }
func (d *Drop) ImageURL() string     { return d.imageURL }
func (d *Drop) PriceCents() int64    { return d.priceCents }
func (d *Drop) TotalStock() int      { return d.totalStock }
func (d *Drop) AvailableStock() int  { return d.availableStock }
func (d *Drop) SoldStock() int       { return d.soldStock }
func (d *Drop) ReservedStock() int   { return d.reservedStock }
func (d *Drop) StartTime() time.Time { return d.startTime }
func (d *Drop) EndTime() *time.Time  { return d.endTime }
func (d *Drop) IsActive() bool       { return d.isActive }
func (d *Drop) Brand() *string       { return d.brand }
func (d *Drop) Category() *string    { return d.category }
func (d *Drop) CreatedAt() time.Time { return d.createdAt }
func (d *Drop) UpdatedAt() time.Time { return d.updatedAt }
