package bootstrap

import (
	"platecost/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.SquareConfig { return cfg.Square },
		func(cfg config.Config) config.SyncConfig { return cfg.Sync },
	),
)
