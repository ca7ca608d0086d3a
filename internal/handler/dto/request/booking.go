package request

import (
	"time"

	"driftwell/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ServiceType       string         `json:"service_type" binding:"required"`
	StartAt           time.Time      `json:"start_at" binding:"required"`
	DurationMin       int            `json:"duration_min" binding:"required,gt=0"`
	Address           AddressPayload `json:"address" binding:"required"`
	ExtraVisits       int            `json:"extra_visits" binding:"gte=0"`
	ExtraParticipants int            `json:"extra_participants" binding:"gte=0"`
	ExtendedMinutes   int            `json:"extended_minutes" binding:"gte=0"`
	Instructions      *string        `json:"instructions,omitempty"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceType:       r.ServiceType,
		StartAt:           r.StartAt,
		DurationMin:       r.DurationMin,
		Street:            r.Address.Street,
		City:              r.Address.City,
		Region:            r.Address.Region,
		PostalCode:        r.Address.PostalCode,
		Lat:               r.Address.Lat,
		Lng:               r.Address.Lng,
		PlaceID:           r.Address.PlaceID,
		ExtraVisits:       r.ExtraVisits,
		ExtraParticipants: r.ExtraParticipants,
		ExtendedMinutes:   r.ExtendedMinutes,
		Instructions:      r.Instructions,
	}
}

type RescheduleBookingRequest struct {
	NewStartAt time.Time `json:"new_start_at" binding:"required"`
}
