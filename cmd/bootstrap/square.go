package bootstrap

import (
	"platecost/internal/infra/square"
	"platecost/internal/usecase/commands"
	usecasesync "platecost/internal/usecase/sync"

	"go.uber.org/fx"
)

var SquareModule = fx.Module("square",
	fx.Provide(
		fx.Annotate(
			square.NewClient,
			fx.As(new(commands.SquareGateway)),
			fx.As(new(usecasesync.OrderFetcher)),
		),
	),
)
