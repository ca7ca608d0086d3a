package queries

import (
	"context"
	"time"

	"driftwell/internal/pkg/errs"
)

// ErrStoreUnavailable marks slot or occupancy reads that failed at the
// store; callers surface it as a retryable failure.
var ErrStoreUnavailable = errs.New("availability store unavailable")

// SlotReadStore returns the administrator-configured slots for a date
// whose availability flag is on. Occupancy is not the store's concern.
type SlotReadStore interface {
	FindAvailableByDate(ctx context.Context, date time.Time) ([]*SlotView, error)
}

// BookingOccupancyReadStore returns the windows of non-cancelled
// bookings intersecting [from, to).
type BookingOccupancyReadStore interface {
	FindActiveBetween(ctx context.Context, from, to time.Time) ([]BookingWindow, error)
}

type AvailabilityQueries interface {
	GetAvailableSlots(ctx context.Context, date time.Time) ([]*SlotView, error)
}

type availabilityQueriesImpl struct {
	slots    SlotReadStore
	bookings BookingOccupancyReadStore
}

func NewAvailabilityQueries(slots SlotReadStore, bookings BookingOccupancyReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{slots: slots, bookings: bookings}
}

// GetAvailableSlots annotates each enabled slot for the date with the
// number of active bookings whose window intersects it, and returns
// only the slots with spare capacity. Pure read; no side effects.
func (q *availabilityQueriesImpl) GetAvailableSlots(ctx context.Context, date time.Time) ([]*SlotView, error) {
	slots, err := q.slots.FindAvailableByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if len(slots) == 0 {
		return []*SlotView{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	windows, err := q.bookings.FindActiveBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	result := make([]*SlotView, 0, len(slots))
	for _, slot := range slots {
		slot.CurrentBookings = countIntersecting(windows, slot.StartAt, slot.EndAt)
		if slot.CurrentBookings < slot.MaxBookings {
			result = append(result, slot)
		}
	}
	return result, nil
}

func countIntersecting(windows []BookingWindow, slotStart, slotEnd time.Time) int32 {
	var n int32
	for _, w := range windows {
		if w.StartAt.Before(slotEnd) && w.EndAt.After(slotStart) {
			n++
		}
	}
	return n
}
