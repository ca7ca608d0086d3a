package request

import (
	"driftwell/internal/domain/booking"
)

// AddressPayload is the wire shape of a visit destination. Coordinates
// and place ID come from the address picker when available; postal code
// alone is enough for a zone-based estimate.
type AddressPayload struct {
	Street     string   `json:"street" binding:"required"`
	City       string   `json:"city" binding:"required"`
	Region     string   `json:"region"`
	PostalCode string   `json:"postal_code"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	PlaceID    *string  `json:"place_id,omitempty"`
}

func (p AddressPayload) ToDomain() (booking.Address, error) {
	var coord *booking.Coordinate
	if p.Lat != nil && p.Lng != nil {
		coord = &booking.Coordinate{Lat: *p.Lat, Lng: *p.Lng}
	}
	return booking.NewAddress(p.Street, p.City, p.Region, p.PostalCode, coord, p.PlaceID)
}

type EstimateFeeRequest struct {
	Address AddressPayload `json:"address" binding:"required"`
}
