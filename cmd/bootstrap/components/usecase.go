package components

import (
	"order-followup/internal/pkg/clock"
	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/dispatch"
	"order-followup/internal/usecase/keepalive"
	"order-followup/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseBackgroundModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFollowUpCommands,
		commands.NewBatchEmailCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBatchEmailQueries,
		queries.NewWorkItemQueries,
	),
)

var usecaseBackgroundModule = fx.Module("usecase/background",
	fx.Provide(
		dispatch.NewMetrics,
		dispatch.NewWorker,
		keepalive.NewScheduler,
	),
)
