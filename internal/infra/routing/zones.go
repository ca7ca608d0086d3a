package routing

import (
	"math"
	"strconv"
)

// FallbackMinutesPerMile derives travel time when no live estimate is
// available. Placeholder heuristic, not calibrated against traffic.
const FallbackMinutesPerMile = 2

// Zone maps a contiguous numeric postal-code range around the dispatch
// point to a canned driving distance.
type Zone struct {
	Name    string
	RangeLo int
	RangeHi int
	Miles   float64
}

// ZoneTable resolves postal codes to distances when the live provider
// is down. Evaluated in order, first match wins; read-only after
// construction.
type ZoneTable struct {
	zones        []Zone
	defaultMiles float64
}

func NewZoneTable(zones []Zone, defaultMiles float64) *ZoneTable {
	return &ZoneTable{zones: zones, defaultMiles: defaultMiles}
}

// NewDefaultZoneTable covers the Austin service area around the
// downtown dispatch point. Anything unrecognized gets the conservative
// 20-mile default so fees never under-quote an unknown address.
func NewDefaultZoneTable() *ZoneTable {
	return NewZoneTable([]Zone{
		{Name: "downtown", RangeLo: 78701, RangeHi: 78705, Miles: 3},
		{Name: "central", RangeLo: 78710, RangeHi: 78739, Miles: 8},
		{Name: "metro", RangeLo: 78740, RangeHi: 78759, Miles: 12},
		{Name: "outer", RangeLo: 78760, RangeHi: 78799, Miles: 15},
	}, 20)
}

// DistanceMiles classifies a postal code into its zone distance.
func (t *ZoneTable) DistanceMiles(postalCode string) float64 {
	code, err := strconv.Atoi(postalCode)
	if err != nil {
		return t.defaultMiles
	}
	for _, z := range t.zones {
		if code >= z.RangeLo && code <= z.RangeHi {
			return z.Miles
		}
	}
	return t.defaultMiles
}

// TravelMinutes applies the fixed minutes-per-mile heuristic, rounded
// up to whole minutes.
func (t *ZoneTable) TravelMinutes(miles float64) int {
	return int(math.Ceil(miles * FallbackMinutesPerMile))
}
