package commands

import (
	"context"

	"driftwell/internal/domain/booking"
	"driftwell/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrConflictCheckUnavailable = errs.New("conflict check unavailable")

// ConflictDetector decides whether a proposed window collides with an
// existing non-cancelled reservation of a different user.
type ConflictDetector struct {
	bookings BookingReadStore
}

func NewConflictDetector(bookings BookingReadStore) *ConflictDetector {
	return &ConflictDetector{bookings: bookings}
}

// HasConflict runs the range-overlap test against stored windows.
// excludeUserID skips that user's own reservations so an edit of an
// existing booking does not conflict with itself.
//
// Fail-closed: if the store cannot be queried this reports a conflict
// together with a retryable error, because an unverifiable window must
// never turn into a double-booking.
func (d *ConflictDetector) HasConflict(ctx context.Context, window booking.TimeWindow, excludeUserID *uuid.UUID) (bool, error) {
	candidates, err := d.bookings.FindOverlapping(ctx, window.Start(), window.End())
	if err != nil {
		return true, errs.Mark(err, ErrConflictCheckUnavailable)
	}

	for _, c := range candidates {
		if excludeUserID != nil && c.UserID == *excludeUserID {
			continue
		}
		// The store pre-filters by range; re-run the interval test here
		// so correctness never depends on the store's filter shape.
		if c.StartAt.Before(window.End()) && c.EndAt.After(window.Start()) {
			return true, nil
		}
	}
	return false, nil
}
