package readstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"sneakerdrop/internal/infra"
	"sneakerdrop/internal/infra/db"
	"sneakerdrop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DropReadStore struct {
	q db.Querier
}

func NewDropReadStore(q db.Querier) *DropReadStore {
	return &DropReadStore{q: q}
}

const dropSelect = `
SELECT id, name, description, sku, image_url, price_cents,
       total_stock, available_stock, sold_stock, reserved_stock,
       drop_start_time, drop_end_time, is_active, brand, category, created_at, updated_at
FROM drops`

func (s *DropReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DropRecord, error) {
	rows, err := s.q.Query(ctx, dropSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find drop by id", err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[queries.DropRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "drop not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan drop", err)
	}
	return &rec, nil
}

func (s *DropReadStore) List(ctx context.Context, filter queries.DropFilter) ([]queries.DropRecord, error) {
	query := dropSelect + ` WHERE 1=1`
	args := make([]any, 0, 3)

	if filter.Brand != "" {
		args = append(args, filter.Brand)
		query += ` AND brand = $` + argN(len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += ` AND category = $` + argN(len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += ` AND is_active = $` + argN(len(args))
	}
	query += ` ORDER BY drop_start_time DESC`

	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list drops", err)
	}
	result, err := pgx.CollectRows(rows, pgx.RowToStructByPos[queries.DropRecord])
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan drops", err)
	}
	return result, nil
}

// ListLive returns active drops whose window contains now.
func (s *DropReadStore) ListLive(ctx context.Context, now time.Time) ([]queries.DropRecord, error) {
	const query = dropSelect + `
WHERE is_active = TRUE
  AND drop_start_time <= $1
  AND (drop_end_time IS NULL OR drop_end_time > $1)
ORDER BY drop_start_time DESC`

	rows, err := s.q.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list live drops", err)
	}
	result, err := pgx.CollectRows(rows, pgx.RowToStructByPos[queries.DropRecord])
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan live drops", err)
	}
	return result, nil
}

func argN(n int) string {
	return strconv.Itoa(n)
}
