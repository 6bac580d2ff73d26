package components

import (
	"log/slog"

	"order-followup/internal/infra/readstore"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/infra/uow"
	"order-followup/internal/pkg/config"
	"order-followup/internal/usecase/queries"
	"order-followup/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// BatchEmail
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BatchEmailReadQueries)),
		),
		fx.Annotate(
			readstore.NewBatchEmailReadStore,
			fx.As(new(queries.BatchEmailReadStore)),
		),
		// WorkItem
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WorkItemReadQueries)),
		),
		fx.Annotate(
			readstore.NewWorkItemReadStore,
			fx.As(new(queries.WorkItemReadStore)),
		),
		// CadenceRule
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CadenceRuleReadQueries)),
		),
		fx.Annotate(
			NewCadenceRuleReadStore,
			fx.As(new(uow.RuleSource)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewCadenceRuleReadStore(q readstore.CadenceRuleReadQueries, db sqlc.DBTX, cfg config.Config, logger *slog.Logger) *readstore.CadenceRuleReadStore {
	return readstore.NewCadenceRuleReadStore(q, db, cfg.Cadence.RuleCacheTTL, logger)
}
