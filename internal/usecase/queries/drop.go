package queries

import (
	"context"
	"time"

	"sneakerdrop/internal/domain/drop"
	"sneakerdrop/internal/infra"
	"sneakerdrop/internal/pkg/clock"
	"sneakerdrop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDropNotFound = errs.New("drop not found")
	ErrQueryFailed  = errs.New("query failed")
)

type DropReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DropRecord, error)
	List(ctx context.Context, filter DropFilter) ([]DropRecord, error)
	ListLive(ctx context.Context, now time.Time) ([]DropRecord, error)
}

type DropQueries interface {
	GetDrop(ctx context.Context, id uuid.UUID) (*DropView, error)
	ListDrops(ctx context.Context, filter DropFilter) ([]DropView, error)
	ListLiveDrops(ctx context.Context) ([]DropView, error)
}

type dropQueriesImpl struct {
	store DropReadStore
	clock clock.Clock
}

func NewDropQueries(store DropReadStore, clk clock.Clock) DropQueries {
	return &dropQueriesImpl{store: store, clock: clk}
}

func (q *dropQueriesImpl) GetDrop(ctx context.Context, id uuid.UUID) (*DropView, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDropNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	view := dropViewFromRecord(*rec, q.clock.Now())
	return &view, nil
}

func (q *dropQueriesImpl) ListDrops(ctx context.Context, filter DropFilter) ([]DropView, error) {
	recs, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	now := q.clock.Now()

	views := make([]DropView, 0, len(recs))
	for _, rec := range recs {
		view := dropViewFromRecord(rec, now)
		// Status filtering is applied here because status is derived, never
		// stored.
		if filter.Status != "" && view.Status != filter.Status {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *dropQueriesImpl) ListLiveDrops(ctx context.Context) ([]DropView, error) {
	recs, err := q.store.ListLive(ctx, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	now := q.clock.Now()

	views := make([]DropView, len(recs))
	for i, rec := range recs {
		views[i] = dropViewFromRecord(rec, now)
	}
	return views, nil
}

func dropViewFromRecord(rec DropRecord, now time.Time) DropView {
	entity := drop.Reconstruct(
		rec.ID, rec.Name, rec.Description, rec.SKU, rec.ImageURL, rec.PriceCents,
		rec.TotalStock, rec.AvailableStock, rec.SoldStock, rec.ReservedStock,
		rec.StartTime, rec.EndTime, rec.IsActive, rec.Brand, rec.Category,
		rec.CreatedAt, rec.UpdatedAt,
	)
	return DropViewFromEntity(entity, now)
}

// DropViewFromEntity builds the read model for a drop, deriving status from
// the time window at now.
func DropViewFromEntity(d *drop.Drop, now time.Time) DropView {
	return DropView{
		ID:             d.ID(),
		Name:           d.Name(),
		Description:    d.Description(),
		SKU:            d.SKU(),
		ImageURL:       d.ImageURL(),
		PriceCents:     d.PriceCents(),
		TotalStock:     d.TotalStock(),
		AvailableStock: d.AvailableStock(),
		SoldStock:      d.SoldStock(),
		ReservedStock:  d.ReservedStock(),
		StartTime:      d.StartTime(),
		EndTime:        d.EndTime(),
		IsActive:       d.IsActive(),
		Brand:          d.Brand(),
		Category:       d.Category(),
		Status:         d.StatusAt(now).String(),
		CreatedAt:      d.CreatedAt(),
		UpdatedAt:      d.UpdatedAt(),
	}
}
