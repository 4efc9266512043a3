package commands

import (
	"context"
	"time"

	"sneakerdrop/internal/domain/drop"
	"sneakerdrop/internal/events"
	"sneakerdrop/internal/infra"
	"sneakerdrop/internal/pkg/clock"
	"sneakerdrop/internal/pkg/errs"
	"sneakerdrop/internal/usecase/queries"
	"sneakerdrop/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidDrop  = errs.New("invalid drop")
	ErrDuplicateSKU = errs.New("sku already exists")
)

type CreateDropInput struct {
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
}

// UpdateDropInput carries partial updates: nil fields are left as they are.
type UpdateDropInput struct {
	Name        *string
	Description *string
	ImageURL    *string
	PriceCents  *int64
	StartTime   *time.Time
	EndTime     *time.Time
	Brand       *string
	Category    *string
}

// DropCommands is the drop-management surface: admin-only, separate from the
// reservation path. Every committed change is announced on the broadcaster so
// storefront clients can refresh without polling.
type DropCommands interface {
	CreateDrop(ctx context.Context, in CreateDropInput) (*queries.DropView, error)
	UpdateDrop(ctx context.Context, dropID uuid.UUID, in UpdateDropInput) (*queries.DropView, error)
	DeactivateDrop(ctx context.Context, dropID uuid.UUID) error
}

type dropCommandsImpl struct {
	uow         shared.UnitOfWork
	broadcaster events.Broadcaster
	clock       clock.Clock
}

func NewDropCommands(uow shared.UnitOfWork, broadcaster events.Broadcaster, clk clock.Clock) DropCommands {
	return &dropCommandsImpl{uow: uow, broadcaster: broadcaster, clock: clk}
}

func (c *dropCommandsImpl) CreateDrop(ctx context.Context, in CreateDropInput) (*queries.DropView, error) {
	now := c.clock.Now()

	d, err := drop.NewDrop(
		in.Name, in.Description, in.SKU, in.ImageURL, in.PriceCents, in.TotalStock,
		in.StartTime, in.EndTime, in.Brand, in.Category, now,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDrop)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Drops().Create(ctx, d); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateSKU)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.broadcaster.DropCreated(ctx, dropCreatedEvent(d, now))

	view := queries.DropViewFromEntity(d, now)
	return &view, nil
}

func (c *dropCommandsImpl) UpdateDrop(ctx context.Context, dropID uuid.UUID, in UpdateDropInput) (*queries.DropView, error) {
	now := c.clock.Now()

	var d *drop.Drop
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		d, err = tx.Drops().GetForUpdate(ctx, dropID)
		if err != nil {
			return mapRepoErr(err, ErrDropNotFound)
		}
		if err := d.ApplyUpdate(drop.Update{
			Name:        in.Name,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			PriceCents:  in.PriceCents,
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
			Brand:       in.Brand,
			Category:    in.Category,
		}, now); err != nil {
			return errs.Mark(err, ErrInvalidDrop)
		}
		if err := tx.Drops().Update(ctx, d); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.broadcaster.DropUpdated(ctx, dropUpdatedEvent(d, now))

	view := queries.DropViewFromEntity(d, now)
	return &view, nil
}

// DeactivateDrop soft-deletes: the row survives so reservations keep a valid
// reference, but the drop stops accepting new claims.
func (c *dropCommandsImpl) DeactivateDrop(ctx context.Context, dropID uuid.UUID) error {
	now := c.clock.Now()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Drops().GetForUpdate(ctx, dropID)
		if err != nil {
			return mapRepoErr(err, ErrDropNotFound)
		}
		d.Deactivate()
		if err := tx.Drops().Update(ctx, d); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.broadcaster.DropDeleted(ctx, events.DropDeleted{DropID: dropID, Timestamp: now})
	return nil
}

func dropCreatedEvent(d *drop.Drop, now time.Time) events.DropCreated {
	return events.DropCreated{
		DropID:         d.ID(),
		Name:           d.Name(),
		PriceCents:     d.PriceCents(),
		TotalStock:     d.TotalStock(),
		AvailableStock: d.AvailableStock(),
		StartTime:      d.StartTime(),
		EndTime:        d.EndTime(),
		Status:         d.StatusAt(now).String(),
		Timestamp:      now,
	}
}

func dropUpdatedEvent(d *drop.Drop, now time.Time) events.DropUpdated {
	return events.DropUpdated{
		DropID:         d.ID(),
		Name:           d.Name(),
		PriceCents:     d.PriceCents(),
		TotalStock:     d.TotalStock(),
		AvailableStock: d.AvailableStock(),
		StartTime:      d.StartTime(),
		EndTime:        d.EndTime(),
		Status:         d.StatusAt(now).String(),
		Timestamp:      now,
	}
}
