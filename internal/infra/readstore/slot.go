package readstore

import (
	"context"
	"time"

	"driftwell/internal/infra"
	"driftwell/internal/infra/db"
	"driftwell/internal/usecase/queries"
)

// SlotReadStore reads the administrator-configured availability slots.
// Occupancy is joined in at the query layer, not here.
type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(db db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: db}
}

const findAvailableByDateSQL = `
SELECT id, slot_date, start_at, end_at, max_bookings
FROM availability_slots
WHERE slot_date = $1 AND is_available = true
ORDER BY start_at`

func (s *SlotReadStore) FindAvailableByDate(ctx context.Context, date time.Time) ([]*queries.SlotView, error) {
	rows, err := s.db.Query(ctx, findAvailableByDateSQL, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability slots", err)
	}
	defer rows.Close()

	slots := []*queries.SlotView{}
	for rows.Next() {
		var slot queries.SlotView
		if err := rows.Scan(
			&slot.ID,
			&slot.SlotDate,
			&slot.StartAt,
			&slot.EndAt,
			&slot.MaxBookings,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability slot", err)
		}
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability slots", err)
	}
	return slots, nil
}
