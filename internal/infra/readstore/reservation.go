package readstore

import (
	"context"
	"time"

	"sneakerdrop/internal/infra"
	"sneakerdrop/internal/infra/db"
	"sneakerdrop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	q db.Querier
}

func NewReservationReadStore(q db.Querier) *ReservationReadStore {
	return &ReservationReadStore{q: q}
}

// ListActiveByUser returns the caller's active reservations with the drop
// projection used for display. Plain read, no locks; eventual consistency is
// acceptable here.
func (s *ReservationReadStore) ListActiveByUser(ctx context.Context, userID string) ([]queries.ActiveReservationView, error) {
	const query = `
SELECT r.id, r.drop_id, r.user_id, r.quantity, r.status, r.expires_at, r.created_at,
       d.id, d.name, d.image_url, d.price_cents, d.available_stock, d.brand
FROM reservations r
JOIN drops d ON d.id = r.drop_id
WHERE r.user_id = $1 AND r.status = 'active'
ORDER BY r.created_at DESC`

	rows, err := s.q.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list active reservations", err)
	}
	defer rows.Close()

	var result []queries.ActiveReservationView
	for rows.Next() {
		var v queries.ActiveReservationView
		if err := rows.Scan(
			&v.ID, &v.DropID, &v.UserID, &v.Quantity, &v.Status, &v.ExpiresAt, &v.CreatedAt,
			&v.Drop.ID, &v.Drop.Name, &v.Drop.ImageURL, &v.Drop.PriceCents, &v.Drop.AvailableStock, &v.Drop.Brand,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan active reservation", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read active reservations", err)
	}
	return result, nil
}

// ExpiredActiveIDs returns ids of active reservations past their expiry
// instant. The sweeper re-checks status under lock before acting on each id,
// so this read needs no locking.
func (s *ReservationReadStore) ExpiredActiveIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	const query = `
SELECT id
FROM reservations
WHERE status = 'active' AND expires_at < $1
ORDER BY expires_at
LIMIT $2`

	rows, err := s.q.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query expired reservations", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan expired reservation ids", err)
	}
	return ids, nil
}
