package commands

import (
	"context"
	"log/slog"

	"driftwell/internal/domain/booking"
	"driftwell/internal/domain/pricing"
	"driftwell/internal/infra/routing"
	"driftwell/internal/pkg/clock"
	"driftwell/internal/pkg/errs"
)

var ErrInvalidAddress = errs.New("invalid address for estimation")

// FeeEstimate is the quote shown to the user while they fill the form
// and snapshotted onto the booking at commit. Degraded marks estimates
// produced by the zone fallback instead of live routing.
type FeeEstimate struct {
	pricing.Quote
	Degraded bool `json:"degraded"`
}

type FeeCommands interface {
	EstimateSetupFee(ctx context.Context, addr booking.Address) (*FeeEstimate, error)
}

type feeCommandsImpl struct {
	routes RouteProvider
	zones  *routing.ZoneTable
	calc   *pricing.Calculator
	clock  clock.Clock
}

func NewFeeCommands(
	routes RouteProvider,
	zones *routing.ZoneTable,
	calc *pricing.Calculator,
	clock clock.Clock,
) FeeCommands {
	return &feeCommandsImpl{
		routes: routes,
		zones:  zones,
		calc:   calc,
		clock:  clock,
	}
}

// EstimateSetupFee prices the trip from the dispatch point to addr.
// The live provider is asked first with the current time as departure
// so congestion is priced in; on any provider failure the estimate
// degrades to the postal-code zone table and is never an error.
func (f *feeCommandsImpl) EstimateSetupFee(ctx context.Context, addr booking.Address) (*FeeEstimate, error) {
	if addr.IsZero() {
		return nil, ErrInvalidAddress
	}

	leg, err := f.routes.Route(ctx, addr, f.clock.Now())
	if err == nil {
		return &FeeEstimate{Quote: f.calc.Calculate(leg.DistanceMiles, leg.TravelMinutes)}, nil
	}

	// Degraded path: zone distance plus the fixed minutes-per-mile
	// heuristic. Logged because it affects pricing accuracy.
	miles := f.zones.DistanceMiles(addr.PostalCode())
	minutes := f.zones.TravelMinutes(miles)
	slog.Warn("setup fee estimate degraded to zone fallback",
		"postal_code", addr.PostalCode(),
		"fallback_miles", miles,
		"error", err.Error(),
	)

	return &FeeEstimate{
		Quote:    f.calc.Calculate(miles, minutes),
		Degraded: true,
	}, nil
}
