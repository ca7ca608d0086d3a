//go:build unit || e2e

package builder

import (
	"time"

	dombooking "driftwell/internal/domain/booking"
	"driftwell/internal/domain/pricing"
	reqdto "driftwell/internal/handler/dto/request"
	"driftwell/internal/usecase/commands"
	"driftwell/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ServiceType       string
	Now               time.Time
	StartAt           time.Time
	DurationMin       int
	Status            string
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
	Instructions      string
	Fee               pricing.Quote
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ServiceType: "cold_plunge",
		Now:         now,
		StartAt:     now.Add(72 * time.Hour),
		DurationMin: 60,
		Status:      "scheduled",
		Street:      "500 Congress Ave",
		City:        "Austin",
		Region:      "TX",
		PostalCode:  "78701",
		Fee: pricing.Quote{
			BaseFeeCents:  7999,
			TotalFeeCents: 7999,
			DistanceMiles: 3,
			TravelMinutes: 6,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	window, err := dombooking.NewTimeWindow(b.StartAt, b.DurationMin)
	if err != nil {
		return nil, err
	}
	address, err := b.BuildAddress()
	if err != nil {
		return nil, err
	}
	addOns, err := dombooking.NewAddOns(b.ExtraVisits, b.ExtraParticipants, b.ExtendedMinutes)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(
		b.Now,
		b.UserID,
		dombooking.ServiceType(b.ServiceType),
		window,
		address,
		addOns,
		dombooking.NewInstructions(b.Instructions),
		b.Fee,
	)
}

func (b *BookingBuilder) BuildAddress() (dombooking.Address, error) {
	var coord *dombooking.Coordinate
	if b.Lat != nil && b.Lng != nil {
		coord = &dombooking.Coordinate{Lat: *b.Lat, Lng: *b.Lng}
	}
	return dombooking.NewAddress(b.Street, b.City, b.Region, b.PostalCode, coord, b.PlaceID)
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	var instructions *string
	if b.Instructions != "" {
		instructions = &b.Instructions
	}
	return commands.CreateBookingInput{
		ServiceType:       b.ServiceType,
		StartAt:           b.StartAt,
		DurationMin:       b.DurationMin,
		Street:            b.Street,
		City:              b.City,
		Region:            b.Region,
		PostalCode:        b.PostalCode,
		Lat:               b.Lat,
		Lng:               b.Lng,
		PlaceID:           b.PlaceID,
		ExtraVisits:       b.ExtraVisits,
		ExtraParticipants: b.ExtraParticipants,
		ExtendedMinutes:   b.ExtendedMinutes,
		Instructions:      instructions,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	var instructions *string
	if b.Instructions != "" {
		instructions = &b.Instructions
	}
	return reqdto.CreateBookingRequest{
		ServiceType: b.ServiceType,
		StartAt:     b.StartAt,
		DurationMin: b.DurationMin,
		Address: reqdto.AddressPayload{
			Street:     b.Street,
			City:       b.City,
			Region:     b.Region,
			PostalCode: b.PostalCode,
			Lat:        b.Lat,
			Lng:        b.Lng,
			PlaceID:    b.PlaceID,
		},
		ExtraVisits:       b.ExtraVisits,
		ExtraParticipants: b.ExtraParticipants,
		ExtendedMinutes:   b.ExtendedMinutes,
		Instructions:      instructions,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	var instructions *string
	if b.Instructions != "" {
		instructions = &b.Instructions
	}
	return &queries.BookingView{
		ID:                b.ID,
		UserID:            b.UserID,
		ServiceType:       b.ServiceType,
		StartAt:           b.StartAt,
		DurationMin:       int32(b.DurationMin),
		Status:            b.Status,
		Street:            b.Street,
		City:              b.City,
		Region:            b.Region,
		PostalCode:        b.PostalCode,
		Lat:               b.Lat,
		Lng:               b.Lng,
		PlaceID:           b.PlaceID,
		ExtraVisits:       int32(b.ExtraVisits),
		ExtraParticipants: int32(b.ExtraParticipants),
		ExtendedMinutes:   int32(b.ExtendedMinutes),
		Instructions:      instructions,
		FeeBaseCents:      b.Fee.BaseFeeCents,
		FeeDistanceCents:  b.Fee.DistanceFeeCents,
		FeeTotalCents:     b.Fee.TotalFeeCents,
		FeeMiles:          b.Fee.DistanceMiles,
		FeeTravelMin:      int32(b.Fee.TravelMinutes),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            b.ID,
		ServiceType:   b.ServiceType,
		StartAt:       b.StartAt,
		DurationMin:   int32(b.DurationMin),
		Status:        b.Status,
		FeeTotalCents: b.Fee.TotalFeeCents,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildWindow() queries.BookingWindow {
	return queries.BookingWindow{
		ID:      b.ID,
		UserID:  b.UserID,
		StartAt: b.StartAt,
		EndAt:   b.StartAt.Add(time.Duration(b.DurationMin) * time.Minute),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithServiceType(serviceType string) *BookingBuilder {
	b.ServiceType = serviceType
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

func (b *BookingBuilder) WithStartAt(startAt time.Time) *BookingBuilder {
	b.StartAt = startAt
	return b
}

func (b *BookingBuilder) WithDurationMin(durationMin int) *BookingBuilder {
	b.DurationMin = durationMin
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPostalCode(postalCode string) *BookingBuilder {
	b.PostalCode = postalCode
	return b
}

func (b *BookingBuilder) WithCoordinate(lat, lng float64) *BookingBuilder {
	b.Lat = &lat
	b.Lng = &lng
	return b
}

func (b *BookingBuilder) WithAddOns(visits, participants, minutes int) *BookingBuilder {
	b.ExtraVisits = visits
	b.ExtraParticipants = participants
	b.ExtendedMinutes = minutes
	return b
}

func (b *BookingBuilder) WithInstructions(instructions string) *BookingBuilder {
	b.Instructions = instructions
	return b
}

func (b *BookingBuilder) WithFee(fee pricing.Quote) *BookingBuilder {
	b.Fee = fee
	return b
}
