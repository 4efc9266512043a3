package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sneakerdrop/internal/domain/drop"
	"sneakerdrop/internal/domain/purchase"
	"sneakerdrop/internal/domain/reservation"
	"sneakerdrop/internal/events"
	"sneakerdrop/internal/infra"
	"sneakerdrop/internal/pkg/clock"
	"sneakerdrop/internal/pkg/errs"
	"sneakerdrop/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDropNotFound            = errs.New("drop not found")
	ErrDropNotAvailable        = errs.New("drop not available for reservation")
	ErrInsufficientStock       = errs.New("insufficient stock")
	ErrDuplicateReservation    = errs.New("duplicate active reservation")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrForbidden               = errs.New("reservation owned by another user")
	ErrInvalidState            = errs.New("reservation is not active")
	ErrReservationExpired      = errs.New("reservation has expired")
	ErrStockInconsistency      = errs.New("stock ledger inconsistency")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ReservationData is the command-side snapshot returned to the transport.
type ReservationData struct {
	ID          uuid.UUID  `json:"id"`
	DropID      uuid.UUID  `json:"dropId"`
	UserID      string     `json:"userId"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// StockData carries the post-commit counter values of the affected drop.
type StockData struct {
	DropID         uuid.UUID `json:"dropId"`
	TotalStock     int       `json:"totalStock"`
	AvailableStock int       `json:"availableStock"`
	SoldStock      int       `json:"soldStock"`
	ReservedStock  int       `json:"reservedStock"`
}

type ReservationResult struct {
	Reservation ReservationData `json:"reservation"`
	Stock       StockData       `json:"stock"`
}

type ReservationCommands interface {
	Create(ctx context.Context, dropID uuid.UUID, userID string) (*ReservationResult, error)
	Complete(ctx context.Context, reservationID uuid.UUID, userID string) (*ReservationResult, error)
	Cancel(ctx context.Context, reservationID uuid.UUID, userID string) (*ReservationResult, error)
}

type reservationCommandsImpl struct {
	uow         shared.UnitOfWork
	broadcaster events.Broadcaster
	clock       clock.Clock
	ttl         time.Duration
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	broadcaster events.Broadcaster,
	clk clock.Clock,
	ttl time.Duration,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:         uow,
		broadcaster: broadcaster,
		clock:       clk,
		ttl:         ttl,
	}
}

// reservationQuantity is fixed at one unit per claim on the API surface;
// entities and the ledger support larger quantities.
const reservationQuantity = 1

func (c *reservationCommandsImpl) Create(ctx context.Context, dropID uuid.UUID, userID string) (*ReservationResult, error) {
	now := c.clock.Now()

	var (
		res *reservation.Reservation
		d   *drop.Drop
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error

		// Exclusive drop lock held for the whole precondition chain.
		d, err = tx.Drops().GetForUpdate(ctx, dropID)
		if err != nil {
			return mapRepoErr(err, ErrDropNotFound)
		}

		existing, err := tx.Reservations().FindActiveByDropAndUser(ctx, dropID, userID)
		if err != nil {
			return mapRepoErr(err, ErrReservationNotFound)
		}
		if existing != nil {
			return ErrDuplicateReservation
		}

		if !d.IsLive(now) {
			return ErrDropNotAvailable
		}

		if err := d.Reserve(reservationQuantity); err != nil {
			if errors.Is(err, drop.ErrInsufficientStock) {
				return ErrInsufficientStock
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		res, err = reservation.NewReservation(dropID, userID, reservationQuantity, c.ttl, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateReservation)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Drops().Update(ctx, d); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return checkLedger(d)
	})
	if err != nil {
		return nil, err
	}

	// Post-commit only: observers must never see state that can roll back.
	c.broadcaster.ReservationCreated(ctx, events.ReservationCreated{
		ReservationID: res.ID(),
		DropID:        d.ID(),
		UserID:        res.UserID(),
		Quantity:      res.Quantity(),
		Status:        res.Status().String(),
		ExpiresAt:     res.ExpiresAt(),
	})
	c.broadcaster.StockUpdated(ctx, stockUpdatedEvent(d, now))

	return buildResult(res, d), nil
}

func (c *reservationCommandsImpl) Complete(ctx context.Context, reservationID uuid.UUID, userID string) (*ReservationResult, error) {
	now := c.clock.Now()

	var (
		res *reservation.Reservation
		d   *drop.Drop
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error

		// Reservation lock before drop lock, always.
		res, err = tx.Reservations().GetForUpdate(ctx, reservationID)
		if err != nil {
			return mapRepoErr(err, ErrReservationNotFound)
		}
		if !res.IsOwnedBy(userID) {
			return ErrForbidden
		}

		d, err = tx.Drops().GetForUpdate(ctx, res.DropID())
		if err != nil {
			return mapRepoErr(err, ErrDropNotFound)
		}

		if err := res.Complete(now); err != nil {
			switch {
			case errors.Is(err, reservation.ErrExpired):
				return ErrReservationExpired
			default:
				return ErrInvalidState
			}
		}

		if err := d.CompleteSale(res.Quantity()); err != nil {
			return failLedger(err, d)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Drops().Update(ctx, d); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		price := d.PriceCents() * int64(res.Quantity())
		if err := tx.Purchases().Create(ctx, purchase.New(res.ID(), d.ID(), res.UserID(), res.Quantity(), price, now)); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return checkLedger(d)
	})
	if err != nil {
		return nil, err
	}

	c.broadcaster.ReservationCompleted(ctx, events.ReservationCompleted{
		ReservationID: res.ID(),
		DropID:        d.ID(),
		UserID:        res.UserID(),
		CompletedAt:   *res.CompletedAt(),
	})
	c.broadcaster.StockUpdated(ctx, stockUpdatedEvent(d, now))

	return buildResult(res, d), nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, reservationID uuid.UUID, userID string) (*ReservationResult, error) {
	now := c.clock.Now()

	var (
		res *reservation.Reservation
		d   *drop.Drop
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error

		res, err = tx.Reservations().GetForUpdate(ctx, reservationID)
		if err != nil {
			return mapRepoErr(err, ErrReservationNotFound)
		}
		if !res.IsOwnedBy(userID) {
			return ErrForbidden
		}

		d, err = tx.Drops().GetForUpdate(ctx, res.DropID())
		if err != nil {
			return mapRepoErr(err, ErrDropNotFound)
		}

		// Cancelling a logically expired but not yet swept reservation is
		// accepted; the stock effect is the same as expiry.
		if err := res.Cancel(now); err != nil {
			return ErrInvalidState
		}

		if err := d.Release(res.Quantity()); err != nil {
			return failLedger(err, d)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Drops().Update(ctx, d); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return checkLedger(d)
	})
	if err != nil {
		return nil, err
	}

	c.broadcaster.StockRecovered(ctx, events.StockRecovered{
		DropID:         d.ID(),
		AvailableStock: d.AvailableStock(),
		ReservedStock:  d.ReservedStock(),
		Timestamp:      now,
	})

	return buildResult(res, d), nil
}

func mapRepoErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

// failLedger logs a counter/bookkeeping contradiction at high severity and
// fails the transaction closed.
func failLedger(err error, d *drop.Drop) error {
	slog.Error("stock ledger inconsistency detected",
		"drop_id", d.ID().String(),
		"total", d.TotalStock(),
		"available", d.AvailableStock(),
		"sold", d.SoldStock(),
		"reserved", d.ReservedStock(),
		"error", err.Error())
	return errs.Mark(err, ErrStockInconsistency)
}

func checkLedger(d *drop.Drop) error {
	if err := d.CheckInvariant(); err != nil {
		return failLedger(err, d)
	}
	return nil
}

func stockUpdatedEvent(d *drop.Drop, now time.Time) events.StockUpdated {
	return events.StockUpdated{
		DropID:         d.ID(),
		TotalStock:     d.TotalStock(),
		AvailableStock: d.AvailableStock(),
		SoldStock:      d.SoldStock(),
		ReservedStock:  d.ReservedStock(),
		Timestamp:      now,
	}
}

func buildResult(res *reservation.Reservation, d *drop.Drop) *ReservationResult {
	return &ReservationResult{
		Reservation: ReservationData{
			ID:          res.ID(),
			DropID:      res.DropID(),
			UserID:      res.UserID(),
			Quantity:    res.Quantity(),
			Status:      res.Status().String(),
			ExpiresAt:   res.ExpiresAt(),
			CompletedAt: res.CompletedAt(),
			CreatedAt:   res.CreatedAt(),
		},
		Stock: StockData{
			DropID:         d.ID(),
			TotalStock:     d.TotalStock(),
			AvailableStock: d.AvailableStock(),
			SoldStock:      d.SoldStock(),
			ReservedStock:  d.ReservedStock(),
		},
	}
}
