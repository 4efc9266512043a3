//go:build unit

// Package fake provides in-memory stand-ins for the persistence layer so
// command and sweeper logic can be tested without a database.
package fake

import (
	"context"
	"sort"
	"time"

	"sneakerdrop/internal/domain/drop"
	"sneakerdrop/internal/domain/purchase"
	"sneakerdrop/internal/domain/reservation"
	"sneakerdrop/internal/infra"
	"sneakerdrop/internal/usecase/queries"
	"sneakerdrop/internal/usecase/shared"

	"github.com/google/uuid"
)

// UnitOfWork mimics the transactional contract: entity copies are handed out
// on read, writes are staged, and a returned error discards every staged
// write (rollback).
type UnitOfWork struct {
	DropRepo        *DropRepo
	ReservationRepo *ReservationRepo
	PurchaseRepo    *PurchaseRepo

	// FailCommitFor simulates a commit failure: any transaction that changed
	// the status of one of these reservations is rolled back and the mapped
	// error returned instead.
	FailCommitFor map[uuid.UUID]error
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		DropRepo:        &DropRepo{drops: map[uuid.UUID]*drop.Drop{}},
		ReservationRepo: &ReservationRepo{reservations: map[uuid.UUID]*reservation.Reservation{}},
		PurchaseRepo:    &PurchaseRepo{},
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	dropSnap := u.DropRepo.snapshot()
	resSnap := u.ReservationRepo.snapshot()
	purchaseSnap := append([]purchase.Purchase(nil), u.PurchaseRepo.Purchases...)

	rollback := func() {
		u.DropRepo.drops = dropSnap
		u.ReservationRepo.reservations = resSnap
		u.PurchaseRepo.Purchases = purchaseSnap
	}

	if err := fn(ctx, fakeTx{u: u}); err != nil {
		rollback()
		return err
	}

	for id, commitErr := range u.FailCommitFor {
		prev, cur := resSnap[id], u.ReservationRepo.reservations[id]
		if cur != nil && (prev == nil || prev.Status() != cur.Status()) {
			rollback()
			return commitErr
		}
	}
	return nil
}

type fakeTx struct {
	u *UnitOfWork
}

func (t fakeTx) Drops() shared.DropRepository               { return t.u.DropRepo }
func (t fakeTx) Reservations() shared.ReservationRepository { return t.u.ReservationRepo }
func (t fakeTx) Purchases() shared.PurchaseRepository       { return t.u.PurchaseRepo }

type DropRepo struct {
	drops map[uuid.UUID]*drop.Drop
}

// Seed stores a drop directly, bypassing transactional bookkeeping.
func (r *DropRepo) Seed(d *drop.Drop) {
	r.drops[d.ID()] = copyDrop(d)
}

func (r *DropRepo) Get(id uuid.UUID) *drop.Drop {
	d, ok := r.drops[id]
	if !ok {
		return nil
	}
	return copyDrop(d)
}

func (r *DropRepo) Create(_ context.Context, d *drop.Drop) error {
	if d.SKU() != nil {
		for _, existing := range r.drops {
			if existing.SKU() != nil && *existing.SKU() == *d.SKU() {
				return infra.WrapRepoErr(infra.KindDuplicateKey, "drop sku already exists", nil)
			}
		}
	}
	r.drops[d.ID()] = copyDrop(d)
	return nil
}

func (r *DropRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*drop.Drop, error) {
	d, ok := r.drops[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "drop not found", nil)
	}
	return copyDrop(d), nil
}

func (r *DropRepo) Update(_ context.Context, d *drop.Drop) error {
	if _, ok := r.drops[d.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "drop not found", nil)
	}
	r.drops[d.ID()] = copyDrop(d)
	return nil
}

func (r *DropRepo) snapshot() map[uuid.UUID]*drop.Drop {
	snap := make(map[uuid.UUID]*drop.Drop, len(r.drops))
	for id, d := range r.drops {
		snap[id] = copyDrop(d)
	}
	return snap
}

type ReservationRepo struct {
	reservations map[uuid.UUID]*reservation.Reservation
}

func (r *ReservationRepo) Seed(res *reservation.Reservation) {
	r.reservations[res.ID()] = copyReservation(res)
}

func (r *ReservationRepo) Get(id uuid.UUID) *reservation.Reservation {
	res, ok := r.reservations[id]
	if !ok {
		return nil
	}
	return copyReservation(res)
}

func (r *ReservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	for _, existing := range r.reservations {
		if existing.DropID() == res.DropID() && existing.UserID() == res.UserID() && existing.IsActive() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "active reservation already exists", nil)
		}
	}
	r.reservations[res.ID()] = copyReservation(res)
	return nil
}

func (r *ReservationRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return copyReservation(res), nil
}

func (r *ReservationRepo) FindActiveByDropAndUser(_ context.Context, dropID uuid.UUID, userID string) (*reservation.Reservation, error) {
	for _, res := range r.reservations {
		if res.DropID() == dropID && res.UserID() == userID && res.IsActive() {
			return copyReservation(res), nil
		}
	}
	return nil, nil
}

func (r *ReservationRepo) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.reservations[res.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	r.reservations[res.ID()] = copyReservation(res)
	return nil
}

func (r *ReservationRepo) snapshot() map[uuid.UUID]*reservation.Reservation {
	snap := make(map[uuid.UUID]*reservation.Reservation, len(r.reservations))
	for id, res := range r.reservations {
		snap[id] = copyReservation(res)
	}
	return snap
}

type PurchaseRepo struct {
	Purchases []purchase.Purchase
}

func (r *PurchaseRepo) Create(_ context.Context, p purchase.Purchase) error {
	for _, existing := range r.Purchases {
		if existing.ReservationID == p.ReservationID {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "purchase already recorded", nil)
		}
	}
	r.Purchases = append(r.Purchases, p)
	return nil
}

// ReservationReadStore serves the sweeper's candidate query from the same
// in-memory state the fake repositories mutate.
type ReservationReadStore struct {
	Repo *ReservationRepo
}

func (s *ReservationReadStore) ListActiveByUser(_ context.Context, userID string) ([]queries.ActiveReservationView, error) {
	var views []queries.ActiveReservationView
	for _, res := range s.Repo.reservations {
		if res.UserID() != userID || !res.IsActive() {
			continue
		}
		views = append(views, queries.ActiveReservationView{
			ID:        res.ID(),
			DropID:    res.DropID(),
			UserID:    res.UserID(),
			Quantity:  res.Quantity(),
			Status:    res.Status().String(),
			ExpiresAt: res.ExpiresAt(),
			CreatedAt: res.CreatedAt(),
		})
	}
	return views, nil
}

func (s *ReservationReadStore) ExpiredActiveIDs(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	type candidate struct {
		id        uuid.UUID
		expiresAt time.Time
	}
	var cands []candidate
	for _, res := range s.Repo.reservations {
		if res.IsActive() && now.After(res.ExpiresAt()) {
			cands = append(cands, candidate{id: res.ID(), expiresAt: res.ExpiresAt()})
		}
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].expiresAt.Before(cands[j].expiresAt) })

	ids := make([]uuid.UUID, 0, len(cands))
	for _, c := range cands {
		if len(ids) == limit {
			break
		}
		ids = append(ids, c.id)
	}
	return ids, nil
}

func copyDrop(d *drop.Drop) *drop.Drop {
	return drop.Reconstruct(
		d.ID(), d.Name(), d.Description(), d.SKU(), d.ImageURL(), d.PriceCents(),
		d.TotalStock(), d.AvailableStock(), d.SoldStock(), d.ReservedStock(),
		d.StartTime(), d.EndTime(), d.IsActive(), d.Brand(), d.Category(),
		d.CreatedAt(), d.UpdatedAt(),
	)
}

func copyReservation(res *reservation.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(
		res.ID(), res.DropID(), res.UserID(), res.Quantity(), res.Status(),
		res.ExpiresAt(), res.CompletedAt(), res.CreatedAt(), res.UpdatedAt(),
	)
}
