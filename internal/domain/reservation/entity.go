package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyUserID     = errors.New("user id is required")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNotActive       = errors.New("reservation is not active")
	ErrExpired         = errors.New("reservation has expired")
)

// Reservation is a TTL-bound claim on units of a drop by one user. While it
// is active the claimed quantity is mirrored in the drop's reserved counter.
type Reservation struct {
	id          uuid.UUID
	dropID      uuid.UUID
	userID      string
	quantity    int
	status      Status
	expiresAt   time.Time
	completedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation creates an active reservation expiring ttl after now.
func NewReservation(dropID uuid.UUID, userID string, quantity int, ttl time.Duration, now time.Time) (*Reservation, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Reservation{
		id:        uuid.New(),
		dropID:    dropID,
		userID:    userID,
		quantity:  quantity,
		status:    StatusActive,
		expiresAt: now.Add(ttl),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id, dropID uuid.UUID,
	userID string,
	quantity int,
	status Status,
	expiresAt time.Time,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		dropID:      dropID,
		userID:      userID,
		quantity:    quantity,
		status:      status,
		expiresAt:   expiresAt,
		completedAt: completedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.userID == userID
}

// HasExpired is the time-based expiry check. Status may still read active
// between the expiry instant and the next sweep; callers that must reject
// stale claims check this independently of status.
func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.expiresAt)
}

// Complete transitions active -> completed. The claim must still be inside
// its TTL at completion time.
func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if r.HasExpired(now) {
		return ErrExpired
	}
	r.status = StatusCompleted
	completed := now
	r.completedAt = &completed
	r.updatedAt = now
	return nil
}

// Cancel transitions active -> cancelled. A logically expired but not yet
// swept reservation may still be cancelled; the stock effect is identical.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// Expire transitions active -> expired. Driven by the sweeper only.
func (r *Reservation) Expire(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusExpired
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) DropID() uuid.UUID       { return r.dropID }
func (r *Reservation) UserID() string          { return r.userID }
func (r *Reservation) Quantity() int           { return r.quantity }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) ExpiresAt() time.Time    { return r.expiresAt }
func (r *Reservation) CompletedAt() *time.Time { return r.completedAt }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
