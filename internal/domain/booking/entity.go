package booking

import (
	"errors"
	"time"

	"driftwell/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceType     = errors.New("invalid service type")
	ErrInvalidStatus          = errors.New("invalid booking status")
	ErrNotCancellable         = errors.New("booking can no longer be cancelled")
	ErrNotReschedulable       = errors.New("booking can no longer be rescheduled")
	ErrCancelWindowClosed     = errors.New("cancellation window has closed")
	ErrRescheduleWindowClosed = errors.New("reschedule window has closed")
)

type Booking struct {
	id           uuid.UUID
	userID       uuid.UUID
	serviceType  ServiceType
	window       TimeWindow
	address      Address
	addOns       AddOns
	status       Status
	instructions Instructions
	fee          pricing.Quote
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBooking builds a reservation in its initial state. Status always
// starts at scheduled; later transitions are operational actions.
func NewBooking(
	now time.Time,
	userID uuid.UUID,
	serviceType ServiceType,
	window TimeWindow,
	address Address,
	addOns AddOns,
	instructions Instructions,
	fee pricing.Quote,
) (*Booking, error) {
	if !serviceType.IsValid() {
		return nil, ErrInvalidServiceType
	}
	if window.IsZero() {
		return nil, ErrInvalidDuration
	}
	if err := window.ValidateNotPast(now); err != nil {
		return nil, err
	}
	if address.IsZero() {
		return nil, ErrMissingAddress
	}

	return &Booking{
		id:           uuid.New(),
		userID:       userID,
		serviceType:  serviceType,
		window:       window,
		address:      address,
		addOns:       addOns,
		status:       StatusScheduled,
		instructions: instructions,
		fee:          fee,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	serviceType ServiceType,
	window TimeWindow,
	address Address,
	addOns AddOns,
	status Status,
	instructions Instructions,
	fee pricing.Quote,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		serviceType:  serviceType,
		window:       window,
		address:      address,
		addOns:       addOns,
		status:       status,
		instructions: instructions,
		fee:          fee,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) ServiceType() ServiceType   { return b.serviceType }
func (b *Booking) Window() TimeWindow         { return b.window }
func (b *Booking) Address() Address           { return b.address }
func (b *Booking) AddOns() AddOns             { return b.addOns }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Instructions() Instructions { return b.instructions }
func (b *Booking) Fee() pricing.Quote         { return b.fee }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// CancellableAt applies the cancellation policy gate: cancelling is
// allowed only while strictly more than cancelWindow remains before the
// visit starts, and only before the visit enters service.
func (b *Booking) CancellableAt(now time.Time, cancelWindow time.Duration) error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrNotCancellable
	}
	if !now.Add(cancelWindow).Before(b.window.Start()) {
		return ErrCancelWindowClosed
	}
	return nil
}

func (b *Booking) Cancel(now time.Time, cancelWindow time.Duration) error {
	if err := b.CancellableAt(now, cancelWindow); err != nil {
		return err
	}
	b.status = StatusCancelled
	return nil
}

// ReschedulableAt mirrors CancellableAt with the longer reschedule
// window, measured against the currently booked start time.
func (b *Booking) ReschedulableAt(now time.Time, rescheduleWindow time.Duration) error {
	if b.status != StatusScheduled && b.status != StatusConfirmed {
		return ErrNotReschedulable
	}
	if !now.Add(rescheduleWindow).Before(b.window.Start()) {
		return ErrRescheduleWindowClosed
	}
	return nil
}

func (b *Booking) Reschedule(now time.Time, rescheduleWindow time.Duration, newWindow TimeWindow) error {
	if err := b.ReschedulableAt(now, rescheduleWindow); err != nil {
		return err
	}
	if newWindow.IsZero() {
		return ErrInvalidDuration
	}
	if err := newWindow.ValidateNotPast(now); err != nil {
		return err
	}
	b.window = newWindow
	return nil
}

// TransitionTo drives the operational lifecycle (confirm, start,
// complete, mark no-show). The booking core itself only creates
// scheduled bookings; this exists for the operational write path.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidStatus
	}
	b.status = next
	return nil
}
