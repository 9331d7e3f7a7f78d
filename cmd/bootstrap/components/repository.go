package components

import (
	"platecost/internal/infra/readstore"
	repo_impl "platecost/internal/infra/repository"
	"platecost/internal/usecase/commands"
	"platecost/internal/usecase/queries"
	usecasesync "platecost/internal/usecase/sync"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewIntegrationRepository,
			fx.As(new(usecasesync.CredentialStore)),
			fx.As(new(commands.CredentialStore)),
		),
		fx.Annotate(
			repo_impl.NewSaleRepository,
			fx.As(new(usecasesync.SaleRepository)),
		),
		fx.Annotate(
			repo_impl.NewInventoryRepository,
			fx.As(new(usecasesync.InventoryReadStore)),
		),
		fx.Annotate(
			repo_impl.NewSnapshotRepository,
			fx.As(new(usecasesync.SnapshotRepository)),
		),
		// Read-side repository for queries
		fx.Annotate(
			readstore.NewSaleReadStore,
			fx.As(new(queries.SaleReadStore)),
		),
	),
)
