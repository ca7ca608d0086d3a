package commands

import (
	"context"
	"time"

	"driftwell/internal/domain/booking"
	"driftwell/internal/infra/routing"
	"driftwell/internal/usecase/queries"

	"github.com/google/uuid"
)

// RouteProvider is the live traffic-aware routing collaborator. It may
// fail or be unavailable; callers are expected to degrade, not abort.
type RouteProvider interface {
	Route(ctx context.Context, dest booking.Address, departAt time.Time) (routing.RouteLeg, error)
}

// BookingRepository is the single write path for reservations. The
// conditional writes enforce the no-overlap invariant inside the store
// operation itself, so two racing requests cannot both land.
type BookingRepository interface {
	// CreateIfFree inserts the booking unless a non-cancelled booking
	// of another user overlaps its window. Returns KindConflict when
	// the window is taken.
	CreateIfFree(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatus transitions status only when the current status is
	// one of from. Returns KindNotFound when no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, from []booking.Status, to booking.Status) error
	// UpdateWindowIfFree moves the booking's window under the same
	// overlap guard as CreateIfFree.
	UpdateWindowIfFree(ctx context.Context, b *booking.Booking) error
}

// BookingReadStore supplies candidate windows for conflict detection.
type BookingReadStore interface {
	// FindOverlapping returns non-cancelled booking windows
	// intersecting [from, to).
	FindOverlapping(ctx context.Context, from, to time.Time) ([]queries.BookingWindow, error)
}
