package components

import (
	"platecost/internal/handler/api"
	"platecost/internal/pkg/clock"
	"platecost/internal/usecase"
	"platecost/internal/usecase/commands"
	"platecost/internal/usecase/queries"
	usecasesync "platecost/internal/usecase/sync"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseSyncModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewIntegrationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSaleQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseSyncModule = fx.Module("usecase/sync",
	fx.Provide(
		fx.Annotate(
			usecasesync.NewEngine,
			fx.As(new(usecasesync.OrderSyncer)),
		),
		fx.Annotate(
			usecasesync.NewSnapshotter,
			fx.As(new(usecasesync.InventorySnapshotter)),
		),
		fx.Annotate(
			usecasesync.NewOrchestrator,
			fx.As(new(api.SyncRunner)),
		),
	),
)
