package response

import (
	"time"

	"driftwell/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	ServiceType       string    `json:"serviceType"`
	StartAt           time.Time `json:"startAt"`
	DurationMin       int32     `json:"durationMin"`
	Status            string    `json:"status"`
	Street            string    `json:"street"`
	City              string    `json:"city"`
	Region            string    `json:"region"`
	PostalCode        string    `json:"postalCode"`
	Lat               *float64  `json:"lat,omitempty"`
	Lng               *float64  `json:"lng,omitempty"`
	PlaceID           *string   `json:"placeId,omitempty"`
	ExtraVisits       int32     `json:"extraVisits"`
	ExtraParticipants int32     `json:"extraParticipants"`
	ExtendedMinutes   int32     `json:"extendedMinutes"`
	Instructions      *string   `json:"instructions,omitempty"`
	FeeBaseCents      int64     `json:"feeBaseCents"`
	FeeDistanceCents  int64     `json:"feeDistanceCents"`
	FeeTotalCents     int64     `json:"feeTotalCents"`
	FeeMiles          float64   `json:"feeMiles"`
	FeeTravelMin      int32     `json:"feeTravelMin"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	ServiceType   string    `json:"serviceType"`
	StartAt       time.Time `json:"startAt"`
	DurationMin   int32     `json:"durationMin"`
	Status        string    `json:"status"`
	FeeTotalCents int64     `json:"feeTotalCents"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingListItem(rm *queries.BookingListItem) (*BookingListResponse, error) {
	var resp BookingListResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}
