package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrStartInPast        = errors.New("start time cannot be in the past")
	ErrMissingPostalCode  = errors.New("postal code is required without coordinates")
	ErrMissingAddress     = errors.New("street and city are required")
	ErrNegativeAddOn      = errors.New("add-on quantities cannot be negative")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// TimeWindow is the half-open interval [start, start+duration).
type TimeWindow struct {
	start       time.Time
	durationMin int
}

func NewTimeWindow(start time.Time, durationMin int) (TimeWindow, error) {
	if durationMin <= 0 {
		return TimeWindow{}, ErrInvalidDuration
	}
	return TimeWindow{start: start, durationMin: durationMin}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.start.Add(time.Duration(w.durationMin) * time.Minute)
}

func (w TimeWindow) DurationMinutes() int {
	return w.durationMin
}

func (w TimeWindow) IsZero() bool {
	return w.start.IsZero()
}

// Overlaps is the half-open interval intersection test:
// aStart < bEnd && aEnd > bStart. Touching endpoints do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.End()) && w.End().After(other.start)
}

func (w TimeWindow) ValidateNotPast(now time.Time) error {
	if w.start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

type Coordinate struct {
	Lat float64
	Lng float64
}

// Address is the visit destination snapshot. A postal code is required
// whenever no coordinate is present: the zone fallback has nothing else
// to key on.
type Address struct {
	street     string
	city       string
	region     string
	postalCode string
	coordinate *Coordinate
	placeID    *string
}

func NewAddress(street, city, region, postalCode string, coordinate *Coordinate, placeID *string) (Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	region = strings.TrimSpace(region)
	postalCode = strings.TrimSpace(postalCode)

	if street == "" || city == "" {
		return Address{}, ErrMissingAddress
	}
	if coordinate == nil && postalCode == "" {
		return Address{}, ErrMissingPostalCode
	}
	if coordinate != nil {
		if coordinate.Lat < -90 || coordinate.Lat > 90 || coordinate.Lng < -180 || coordinate.Lng > 180 {
			return Address{}, ErrInvalidCoordinates
		}
	}

	return Address{
		street:     street,
		city:       city,
		region:     region,
		postalCode: postalCode,
		coordinate: coordinate,
		placeID:    placeID,
	}, nil
}

func (a Address) Street() string          { return a.street }
func (a Address) City() string            { return a.city }
func (a Address) Region() string          { return a.region }
func (a Address) PostalCode() string      { return a.postalCode }
func (a Address) Coordinate() *Coordinate { return a.coordinate }
func (a Address) PlaceID() *string        { return a.placeID }

func (a Address) IsZero() bool {
	return a.street == "" && a.city == ""
}

func (a Address) String() string {
	parts := []string{a.street, a.city}
	if a.region != "" {
		parts = append(parts, a.region)
	}
	if a.postalCode != "" {
		parts = append(parts, a.postalCode)
	}
	return strings.Join(parts, ", ")
}

// AddOns are the optional service extras selected on the booking form.
type AddOns struct {
	extraVisits       int
	extraParticipants int
	extendedMinutes   int
}

func NewAddOns(extraVisits, extraParticipants, extendedMinutes int) (AddOns, error) {
	if extraVisits < 0 || extraParticipants < 0 || extendedMinutes < 0 {
		return AddOns{}, ErrNegativeAddOn
	}
	return AddOns{
		extraVisits:       extraVisits,
		extraParticipants: extraParticipants,
		extendedMinutes:   extendedMinutes,
	}, nil
}

func (a AddOns) ExtraVisits() int       { return a.extraVisits }
func (a AddOns) ExtraParticipants() int { return a.extraParticipants }
func (a AddOns) ExtendedMinutes() int   { return a.extendedMinutes }

type Instructions struct {
	value string
}

func NewInstructions(value string) Instructions {
	return Instructions{value: strings.TrimSpace(value)}
}

func (n Instructions) String() string {
	return n.value
}

func (n Instructions) IsEmpty() bool {
	return n.value == ""
}
