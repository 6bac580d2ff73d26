package components

import (
	"order-followup/internal/handler"
	"order-followup/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBatchEmailHandler,
		api.NewWorkItemHandler,
	),
	fx.Invoke(handler.NewRouter),
)
