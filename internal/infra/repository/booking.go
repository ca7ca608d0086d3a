package repository

import (
	"context"

	"driftwell/internal/domain/booking"
	"driftwell/internal/infra"
	"driftwell/internal/infra/db"
	"driftwell/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// BookingRepository is the write side of the reservation store. Every
// window-affecting statement carries its own NOT EXISTS overlap guard,
// so the no-double-booking invariant holds inside the write itself
// instead of depending on a separate check racing ahead of it.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const createIfFreeSQL = `
INSERT INTO bookings (
	id, user_id, service_type, start_at, duration_min, status,
	street, city, region, postal_code, lat, lng, place_id,
	extra_visits, extra_participants, extended_minutes, instructions,
	fee_base_cents, fee_distance_cents, fee_total_cents, fee_miles, fee_travel_min
)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
WHERE NOT EXISTS (
	SELECT 1 FROM bookings b
	WHERE b.status <> 'cancelled'
	  AND b.user_id <> $2
	  AND b.start_at < $4 + make_interval(mins => $5)
	  AND b.start_at + make_interval(mins => b.duration_min) > $4
)
RETURNING id`

func (r *BookingRepository) CreateIfFree(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	addr := b.Address()
	addOns := b.AddOns()
	fee := b.Fee()

	var lat, lng *float64
	if coord := addr.Coordinate(); coord != nil {
		lat, lng = &coord.Lat, &coord.Lng
	}
	var instructions *string
	if !b.Instructions().IsEmpty() {
		v := b.Instructions().String()
		instructions = &v
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createIfFreeSQL,
		b.ID(),
		b.UserID(),
		b.ServiceType().String(),
		b.Window().Start(),
		b.Window().DurationMinutes(),
		b.Status().String(),
		addr.Street(),
		addr.City(),
		addr.Region(),
		addr.PostalCode(),
		pgconv.Float64PtrToPgtype(lat),
		pgconv.Float64PtrToPgtype(lng),
		pgconv.StringPtrToPgtype(addr.PlaceID()),
		addOns.ExtraVisits(),
		addOns.ExtraParticipants(),
		addOns.ExtendedMinutes(),
		pgconv.StringPtrToPgtype(instructions),
		fee.BaseFeeCents,
		fee.DistanceFeeCents,
		fee.TotalFeeCents,
		fee.DistanceMiles,
		fee.TravelMinutes,
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("overlapping reservation exists", nil, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

const updateStatusSQL = `
UPDATE bookings
SET status = $2, updated_at = now()
WHERE id = $1 AND status = ANY($3)
RETURNING id`

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from []booking.Status, to booking.Status) error {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = s.String()
	}

	var updated uuid.UUID
	err := r.db.QueryRow(ctx, updateStatusSQL, id, to.String(), fromStrs).Scan(&updated)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking not in an updatable status", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}

const updateWindowIfFreeSQL = `
UPDATE bookings
SET start_at = $2, duration_min = $3, updated_at = now()
WHERE id = $1
  AND NOT EXISTS (
	SELECT 1 FROM bookings b
	WHERE b.id <> $1
	  AND b.status <> 'cancelled'
	  AND b.user_id <> $4
	  AND b.start_at < $2 + make_interval(mins => $3)
	  AND b.start_at + make_interval(mins => b.duration_min) > $2
)
RETURNING id`

func (r *BookingRepository) UpdateWindowIfFree(ctx context.Context, b *booking.Booking) error {
	var updated uuid.UUID
	err := r.db.QueryRow(ctx, updateWindowIfFreeSQL,
		b.ID(),
		b.Window().Start(),
		b.Window().DurationMinutes(),
		b.UserID(),
	).Scan(&updated)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("overlapping reservation exists", nil, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update booking window", err)
	}
	return nil
}
