package readstore

import (
	"context"
	"time"

	"driftwell/internal/infra"
	"driftwell/internal/infra/db"
	"driftwell/internal/pkg/pgconv"
	"driftwell/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingReadStore serves the read side: full views, list items, and
// the window projections consumed by the availability resolver and the
// conflict detector.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findWindowsBetweenSQL = `
SELECT id, user_id, start_at, start_at + make_interval(mins => duration_min) AS end_at
FROM bookings
WHERE status <> 'cancelled'
  AND start_at < $2
  AND start_at + make_interval(mins => duration_min) > $1
ORDER BY start_at`

func (s *BookingReadStore) windowsBetween(ctx context.Context, from, to time.Time) ([]queries.BookingWindow, error) {
	rows, err := s.db.Query(ctx, findWindowsBetweenSQL, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking windows", err)
	}
	defer rows.Close()

	var windows []queries.BookingWindow
	for rows.Next() {
		var w queries.BookingWindow
		if err := rows.Scan(&w.ID, &w.UserID, &w.StartAt, &w.EndAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking window", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking windows", err)
	}
	return windows, nil
}

// FindOverlapping returns non-cancelled windows intersecting [from, to).
func (s *BookingReadStore) FindOverlapping(ctx context.Context, from, to time.Time) ([]queries.BookingWindow, error) {
	return s.windowsBetween(ctx, from, to)
}

// FindActiveBetween is the occupancy projection for availability. It is
// the same range query as FindOverlapping; the two names keep the read
// ports of conflict detection and availability independent.
func (s *BookingReadStore) FindActiveBetween(ctx context.Context, from, to time.Time) ([]queries.BookingWindow, error) {
	return s.windowsBetween(ctx, from, to)
}

const findByIDSQL = `
SELECT id, user_id, service_type, start_at, duration_min, status,
       street, city, region, postal_code, lat, lng, place_id,
       extra_visits, extra_participants, extended_minutes, instructions,
       fee_base_cents, fee_distance_cents, fee_total_cents, fee_miles, fee_travel_min,
       created_at, updated_at
FROM bookings
WHERE id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view         queries.BookingView
		lat, lng     pgtype.Float8
		placeID      pgtype.Text
		instructions pgtype.Text
	)
	err := s.db.QueryRow(ctx, findByIDSQL, id).Scan(
		&view.ID,
		&view.UserID,
		&view.ServiceType,
		&view.StartAt,
		&view.DurationMin,
		&view.Status,
		&view.Street,
		&view.City,
		&view.Region,
		&view.PostalCode,
		&lat,
		&lng,
		&placeID,
		&view.ExtraVisits,
		&view.ExtraParticipants,
		&view.ExtendedMinutes,
		&instructions,
		&view.FeeBaseCents,
		&view.FeeDistanceCents,
		&view.FeeTotalCents,
		&view.FeeMiles,
		&view.FeeTravelMin,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	view.Lat = pgconv.Float64PtrFromPgtype(lat)
	view.Lng = pgconv.Float64PtrFromPgtype(lng)
	view.PlaceID = pgconv.StringPtrFromPgtype(placeID)
	view.Instructions = pgconv.StringPtrFromPgtype(instructions)
	return &view, nil
}

const findByUserIDSQL = `
SELECT id, service_type, start_at, duration_min, status, fee_total_cents, created_at
FROM bookings
WHERE user_id = $1
ORDER BY start_at DESC`

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, findByUserIDSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID,
			&item.ServiceType,
			&item.StartAt,
			&item.DurationMin,
			&item.Status,
			&item.FeeTotalCents,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return items, nil
}
