package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	ServiceType       string     `json:"service_type"`
	StartAt           time.Time  `json:"start_at"`
	DurationMin       int32      `json:"duration_min"`
	Status            string     `json:"status"`
	Street            string     `json:"street"`
	City              string     `json:"city"`
	Region            string     `json:"region"`
	PostalCode        string     `json:"postal_code"`
	Lat               *float64   `json:"lat,omitempty"`
	Lng               *float64   `json:"lng,omitempty"`
	PlaceID           *string    `json:"place_id,omitempty"`
	ExtraVisits       int32      `json:"extra_visits"`
	ExtraParticipants int32      `json:"extra_participants"`
	ExtendedMinutes   int32      `json:"extended_minutes"`
	Instructions      *string    `json:"instructions,omitempty"`
	FeeBaseCents      int64      `json:"fee_base_cents"`
	FeeDistanceCents  int64      `json:"fee_distance_cents"`
	FeeTotalCents     int64      `json:"fee_total_cents"`
	FeeMiles          float64    `json:"fee_miles"`
	FeeTravelMin      int32      `json:"fee_travel_min"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	ServiceType   string    `json:"service_type"`
	StartAt       time.Time `json:"start_at"`
	DurationMin   int32     `json:"duration_min"`
	Status        string    `json:"status"`
	FeeTotalCents int64     `json:"fee_total_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingWindow is the minimal occupancy projection used by the
// availability resolver and the conflict detector.
type BookingWindow struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}

type SlotView struct {
	ID              uuid.UUID `json:"id"`
	SlotDate        time.Time `json:"slot_date"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	MaxBookings     int32     `json:"max_bookings"`
	CurrentBookings int32     `json:"current_bookings"`
}
