package components

import (
	"go.uber.org/fx"

	"gymbook/internal/pkg/clock"
	"gymbook/internal/usecase"
	"gymbook/internal/usecase/commands"
	"gymbook/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEquipmentQueries,
		queries.NewBookingQueries,
	),
)
