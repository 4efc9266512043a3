package repository

import (
	"context"
	"errors"
	"time"

	"sneakerdrop/internal/domain/reservation"
	"sneakerdrop/internal/infra"
	"sneakerdrop/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	q db.Querier
}

func NewReservationRepository(q db.Querier) *ReservationRepository {
	return &ReservationRepository{q: q}
}

const reservationColumns = `id, drop_id, user_id, quantity, status, expires_at, completed_at, created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const stmt = `
INSERT INTO reservations (` + reservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.q.Exec(ctx, stmt,
		res.ID(), res.DropID(), res.UserID(), res.Quantity(), res.Status().String(),
		res.ExpiresAt(), res.CompletedAt(), res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		// The partial unique index on (drop_id, user_id) WHERE status = 'active'
		// backstops the one-active-reservation rule under concurrent creates.
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "active reservation already exists", err)
		}
		if db.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, "drop does not exist", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

	res, err := scanReservation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to lock reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindActiveByDropAndUser(ctx context.Context, dropID uuid.UUID, userID string) (*reservation.Reservation, error) {
	const query = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE drop_id = $1 AND user_id = $2 AND status = 'active'`

	res, err := scanReservation(r.q.QueryRow(ctx, query, dropID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find active reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	const stmt = `
UPDATE reservations
SET status = $2, completed_at = $3, updated_at = $4
WHERE id = $1`

	tag, err := r.q.Exec(ctx, stmt, res.ID(), res.Status().String(), res.CompletedAt(), res.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, dropID           uuid.UUID
		userID               string
		quantity             int
		status               string
		expiresAt            time.Time
		completedAt          *time.Time
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &dropID, &userID, &quantity, &status, &expiresAt, &completedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return reservation.Reconstruct(
		id, dropID, userID, quantity, reservation.Status(status),
		expiresAt, completedAt, createdAt, updatedAt,
	), nil
}
