package components

import (
	"driftwell/internal/domain/pricing"
	"driftwell/internal/infra/routing"
	"driftwell/internal/pkg/clock"
	"driftwell/internal/pkg/config"
	"driftwell/internal/usecase/commands"
	"driftwell/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPriceCalculator,
	routing.NewDefaultZoneTable,
	fx.Annotate(
		NewRouteClient,
		fx.As(new(commands.RouteProvider)),
	),
	func(cfg config.Config) config.PolicyConfig {
		return cfg.Policy
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewConflictDetector,
		commands.NewFeeCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

func NewPriceCalculator(cfg config.Config) *pricing.Calculator {
	return pricing.NewCalculator(
		cfg.Pricing.BaseFeeCents,
		cfg.Pricing.PerMileCents,
		cfg.Pricing.FreeRadiusMiles,
		cfg.Pricing.MaxFeeCents,
	)
}

func NewRouteClient(cfg config.Config) *routing.Client {
	return routing.NewClient(cfg.Routing, cfg.Dispatch)
}
