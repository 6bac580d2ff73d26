package bootstrap

import (
	"order-followup/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	MetricsModule,
	DBModule,
	MailModule,
	ChannelModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkersModule,
)
