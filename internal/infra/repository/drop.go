package repository

import (
	"context"
	"errors"
	"time"

	"sneakerdrop/internal/domain/drop"
	"sneakerdrop/internal/infra"
	"sneakerdrop/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DropRepository struct {
	q db.Querier
}

func NewDropRepository(q db.Querier) *DropRepository {
	return &DropRepository{q: q}
}

const dropColumns = `id, name, description, sku, image_url, price_cents,
total_stock, available_stock, sold_stock, reserved_stock,
drop_start_time, drop_end_time, is_active, brand, category, created_at, updated_at`

func (r *DropRepository) Create(ctx context.Context, d *drop.Drop) error {
	const stmt = `
INSERT INTO drops (` + dropColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.q.Exec(ctx, stmt,
		d.ID(), d.Name(), d.Description(), d.SKU(), d.ImageURL(), d.PriceCents(),
		d.TotalStock(), d.AvailableStock(), d.SoldStock(), d.ReservedStock(),
		d.StartTime(), d.EndTime(), d.IsActive(), d.Brand(), d.Category(),
		d.CreatedAt(), d.UpdatedAt(),
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "drop sku already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create drop", err)
	}
	return nil
}

// GetForUpdate loads a drop row under an exclusive lock. The lock is held
// until the surrounding transaction commits or rolls back.
func (r *DropRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*drop.Drop, error) {
	const query = `SELECT ` + dropColumns + ` FROM drops WHERE id = $1 FOR UPDATE`

	d, err := scanDrop(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "drop not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to lock drop", err)
	}
	return d, nil
}

// Update persists the stock counters and activation flag. Callers must hold
// the row lock taken by GetForUpdate.
func (r *DropRepository) Update(ctx context.Context, d *drop.Drop) error {
	const stmt = `
UPDATE drops
SET total_stock = $2, available_stock = $3, sold_stock = $4, reserved_stock = $5,
    is_active = $6, updated_at = $7
WHERE id = $1`

	tag, err := r.q.Exec(ctx, stmt,
		d.ID(), d.TotalStock(), d.AvailableStock(), d.SoldStock(), d.ReservedStock(),
		d.IsActive(), d.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update drop", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "drop not found", nil)
	}
	return nil
}

func scanDrop(row pgx.Row) (*drop.Drop, error) {
	var (
		id                                                 uuid.UUID
		name, description, imageURL                        string
		sku, brand, category                               *string
		priceCents                                         int64
		totalStock, availableStock, soldStock, reservedQty int
		startTime, createdAt, updatedAt                    time.Time
		endTime                                            *time.Time
		isActive                                           bool
	)
	err := row.Scan(
		&id, &name, &description, &sku, &imageURL, &priceCents,
		&totalStock, &availableStock, &soldStock, &reservedQty,
		&startTime, &endTime, &isActive, &brand, &category, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return drop.Reconstruct(
		id, name, description, sku, imageURL, priceCents,
		totalStock, availableStock, soldStock, reservedQty,
		startTime, endTime, isActive, brand, category, createdAt, updatedAt,
	), nil
}
