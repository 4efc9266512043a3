package repository

import (
	"context"

	"sneakerdrop/internal/domain/purchase"
	"sneakerdrop/internal/infra"
	"sneakerdrop/internal/infra/db"
)

type PurchaseRepository struct {
	q db.Querier
}

func NewPurchaseRepository(q db.Querier) *PurchaseRepository {
	return &PurchaseRepository{q: q}
}

func (r *PurchaseRepository) Create(ctx context.Context, p purchase.Purchase) error {
	const stmt = `
INSERT INTO purchases (id, reservation_id, drop_id, user_id, quantity, price_paid_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.q.Exec(ctx, stmt,
		p.ID, p.ReservationID, p.DropID, p.UserID, p.Quantity, p.PricePaidCents, p.CreatedAt,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "purchase already recorded for reservation", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create purchase", err)
	}
	return nil
}
