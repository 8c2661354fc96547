package components

import (
	"tidybook/internal/domain/catalog"
	"tidybook/internal/pkg/clock"
	"tidybook/internal/pkg/config"
	"tidybook/internal/usecase/commands"
	"tidybook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) catalog.EligibilityPolicy {
		return catalog.NewEligibilityPolicy(cfg.Booking.PostcodeOverrides)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
	),
)
