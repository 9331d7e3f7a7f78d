package components

import (
	"platecost/internal/handler"
	"platecost/internal/handler/api"
	"platecost/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewIntegrationHandler,
		api.NewSaleHandler,
		api.NewCronHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
