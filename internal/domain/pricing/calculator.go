// Package pricing computes the one-time setup fee charged for
// delivering and picking up equipment. All amounts are integer cents;
// fee components round up so rounding never under-charges.
package pricing

import "math"

const (
	DefaultBaseFeeCents    = 7999
	DefaultPerMileCents    = 500
	DefaultFreeRadiusMiles = 10.0
	DefaultMaxFeeCents     = 50000
)

// Quote is the recorded result of one fee calculation. It is attached
// to a booking at commit time so the fee cannot drift afterwards.
type Quote struct {
	BaseFeeCents     int64   `json:"base_fee_cents"`
	DistanceFeeCents int64   `json:"distance_fee_cents"`
	TotalFeeCents    int64   `json:"total_fee_cents"`
	DistanceMiles    float64 `json:"distance_miles"`
	TravelMinutes    int     `json:"travel_minutes"`
}

type Calculator struct {
	baseFeeCents    int64
	perMileCents    int64
	freeRadiusMiles float64
	maxFeeCents     int64
}

func NewCalculator(baseFeeCents, perMileCents int64, freeRadiusMiles float64, maxFeeCents int64) *Calculator {
	return &Calculator{
		baseFeeCents:    baseFeeCents,
		perMileCents:    perMileCents,
		freeRadiusMiles: freeRadiusMiles,
		maxFeeCents:     maxFeeCents,
	}
}

func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultBaseFeeCents, DefaultPerMileCents, DefaultFreeRadiusMiles, DefaultMaxFeeCents)
}

// Calculate prices a trip: base fee plus per-mile charge on mileage
// beyond the free radius, capped so extreme distances stay quotable
// instead of being rejected.
func (c *Calculator) Calculate(distanceMiles float64, travelMinutes int) Quote {
	var distanceFee int64
	if overage := distanceMiles - c.freeRadiusMiles; overage > 0 {
		distanceFee = int64(math.Ceil(overage * float64(c.perMileCents)))
	}

	total := c.baseFeeCents + distanceFee
	if total > c.maxFeeCents {
		total = c.maxFeeCents
	}

	return Quote{
		BaseFeeCents:     c.baseFeeCents,
		DistanceFeeCents: distanceFee,
		TotalFeeCents:    total,
		DistanceMiles:    distanceMiles,
		TravelMinutes:    travelMinutes,
	}
}
