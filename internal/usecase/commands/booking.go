package commands

import (
	"context"
	"log/slog"
	"time"

	"driftwell/internal/domain/booking"
	"driftwell/internal/domain/pricing"
	"driftwell/internal/infra"
	"driftwell/internal/pkg/clock"
	"driftwell/internal/pkg/config"
	"driftwell/internal/pkg/errs"
	"driftwell/internal/pkg/ptr"
	"driftwell/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrValidation       = errs.New("invalid booking request")
	ErrBookingConflict  = errs.New("booking conflict")
	ErrStoreUnavailable = errs.New("reservation store unavailable")
)

type CreateBookingInput struct {
	ServiceType       string
	StartAt           time.Time
	DurationMin       int
	Street            string
	City              string
	Region            string
	PostalCode        string
	Lat               *float64
	Lng               *float64
	PlaceID           *string
	ExtraVisits       int
	ExtraParticipants int
	ExtendedMinutes   int
	Instructions      *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	RescheduleBooking(ctx context.Context, id uuid.UUID, userID uuid.UUID, newStart time.Time) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	repo      BookingRepository
	conflicts *ConflictDetector
	fees      FeeCommands
	views     queries.BookingQueries
	clock     clock.Clock
	policy    config.PolicyConfig
}

func NewBookingCommands(
	repo BookingRepository,
	conflicts *ConflictDetector,
	fees FeeCommands,
	views queries.BookingQueries,
	clock clock.Clock,
	policy config.PolicyConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:      repo,
		conflicts: conflicts,
		fees:      fees,
		views:     views,
		clock:     clock,
		policy:    policy,
	}
}

// CreateBooking is the single write path for reservations: validate,
// check for conflicts, snapshot the fee, then commit with one
// conditional insert. The insert itself re-enforces the no-overlap
// invariant, so a race between check and write cannot double-book.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, input CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error) {
	// Fail fast on missing required fields before any external call.
	if input.ServiceType == "" || input.StartAt.IsZero() || input.DurationMin <= 0 || input.Street == "" {
		return nil, ErrValidation
	}

	window, err := booking.NewTimeWindow(input.StartAt, input.DurationMin)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var coord *booking.Coordinate
	if input.Lat != nil && input.Lng != nil {
		coord = &booking.Coordinate{Lat: *input.Lat, Lng: *input.Lng}
	}
	address, err := booking.NewAddress(input.Street, input.City, input.Region, input.PostalCode, coord, input.PlaceID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	addOns, err := booking.NewAddOns(input.ExtraVisits, input.ExtraParticipants, input.ExtendedMinutes)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	instructions := booking.NewInstructions(ptr.Deref(input.Instructions, ""))

	conflict, err := c.conflicts.HasConflict(ctx, window, &userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if conflict {
		return nil, ErrBookingConflict
	}

	// Snapshot the fee at commit so the recorded amount cannot drift
	// from what the user was quoted.
	estimate, err := c.fees.EstimateSetupFee(ctx, address)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	entity, err := booking.NewBooking(c.clock.Now(), userID, booking.ServiceType(input.ServiceType), window, address, addOns, instructions, estimate.Quote)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	id, err := c.repo.CreateIfFree(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	view, err := c.views.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	slog.Info("booking created",
		"booking_id", id,
		"service_type", input.ServiceType,
		"start_at", input.StartAt,
		"fee_total_cents", estimate.TotalFeeCents,
		"fee_degraded", estimate.Degraded,
	)
	return view, nil
}

// CancelBooking applies the cancellation policy gate and transitions
// the booking to cancelled. The status condition on the update keeps a
// concurrent operational transition from being overwritten.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	entity, err := c.ownedBooking(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := entity.Cancel(c.clock.Now(), c.policy.CancelWindow); err != nil {
		return err
	}

	err = c.repo.UpdateStatus(ctx, id, []booking.Status{booking.StatusScheduled, booking.StatusConfirmed}, booking.StatusCancelled)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.ErrNotCancellable
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}

	slog.Info("booking cancelled", "booking_id", id)
	return nil
}

// RescheduleBooking moves an existing booking to a new start while
// keeping its duration. The caller's own reservations are excluded
// from the conflict check so the move never collides with itself.
func (c *bookingCommandsImpl) RescheduleBooking(ctx context.Context, id uuid.UUID, userID uuid.UUID, newStart time.Time) (*queries.BookingView, error) {
	entity, err := c.ownedBooking(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	newWindow, err := booking.NewTimeWindow(newStart, entity.Window().DurationMinutes())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := entity.Reschedule(c.clock.Now(), c.policy.RescheduleWindow, newWindow); err != nil {
		return nil, err
	}

	conflict, err := c.conflicts.HasConflict(ctx, newWindow, &userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if conflict {
		return nil, ErrBookingConflict
	}

	if err := c.repo.UpdateWindowIfFree(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	view, err := c.views.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	slog.Info("booking rescheduled", "booking_id", id, "new_start", newStart)
	return view, nil
}

func (c *bookingCommandsImpl) ownedBooking(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*booking.Booking, error) {
	view, err := c.views.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != userID {
		// Hide other users' bookings behind not-found.
		return nil, queries.ErrBookingNotFound
	}
	return domainFromView(view)
}

func domainFromView(view *queries.BookingView) (*booking.Booking, error) {
	window, err := booking.NewTimeWindow(view.StartAt, int(view.DurationMin))
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	var coord *booking.Coordinate
	if view.Lat != nil && view.Lng != nil {
		coord = &booking.Coordinate{Lat: *view.Lat, Lng: *view.Lng}
	}
	address, err := booking.NewAddress(view.Street, view.City, view.Region, view.PostalCode, coord, view.PlaceID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	addOns, err := booking.NewAddOns(int(view.ExtraVisits), int(view.ExtraParticipants), int(view.ExtendedMinutes))
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	instructions := booking.NewInstructions(ptr.Deref(view.Instructions, ""))

	return booking.ReconstructBooking(
		view.ID,
		view.UserID,
		booking.ServiceType(view.ServiceType),
		window,
		address,
		addOns,
		booking.Status(view.Status),
		instructions,
		pricing.Quote{
			BaseFeeCents:     view.FeeBaseCents,
			DistanceFeeCents: view.FeeDistanceCents,
			TotalFeeCents:    view.FeeTotalCents,
			DistanceMiles:    view.FeeMiles,
			TravelMinutes:    int(view.FeeTravelMin),
		},
		view.CreatedAt,
		view.UpdatedAt,
	), nil
}
