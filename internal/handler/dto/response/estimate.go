package response

import (
	"driftwell/internal/usecase/commands"
)

type FeeEstimateResponse struct {
	BaseFeeCents     int64   `json:"baseFeeCents"`
	DistanceFeeCents int64   `json:"distanceFeeCents"`
	TotalFeeCents    int64   `json:"totalFeeCents"`
	DistanceMiles    float64 `json:"distanceMiles"`
	TravelMinutes    int     `json:"travelMinutes"`
	Degraded         bool    `json:"degraded"`
}

func FromFeeEstimate(e *commands.FeeEstimate) *FeeEstimateResponse {
	return &FeeEstimateResponse{
		BaseFeeCents:     e.BaseFeeCents,
		DistanceFeeCents: e.DistanceFeeCents,
		TotalFeeCents:    e.TotalFeeCents,
		DistanceMiles:    e.DistanceMiles,
		TravelMinutes:    e.TravelMinutes,
		Degraded:         e.Degraded,
	}
}
