package queries

import (
	"context"
	"time"

	"sneakerdrop/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	ListActiveByUser(ctx context.Context, userID string) ([]ActiveReservationView, error)
	ExpiredActiveIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type ReservationQueries interface {
	ListActiveForUser(ctx context.Context, userID string) ([]ActiveReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) ListActiveForUser(ctx context.Context, userID string) ([]ActiveReservationView, error) {
	views, err := q.store.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
