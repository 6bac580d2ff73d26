package bootstrap

import (
	"log/slog"

	"order-followup/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(WarnCadenceTimeZone),
)

// WarnCadenceTimeZone reports a cadence timezone that silently became UTC.
func WarnCadenceTimeZone(cfg config.Config, logger *slog.Logger) {
	if _, err := cfg.Cadence.LoadLocation(); err != nil {
		logger.Warn("cadence timezone unavailable, business days use UTC",
			"timezone", cfg.Cadence.TimeZone,
			"error", err.Error())
	}
}
