package bootstrap

import (
	"context"
	"log/slog"

	"order-followup/internal/infra/mailer"
	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/mailtmpl"
	"order-followup/internal/usecase/dispatch"
	"order-followup/internal/usecase/queries"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailer,
		fx.Annotate(
			mailtmpl.NewRenderer,
			fx.As(new(dispatch.Renderer)),
			fx.As(new(queries.TemplateRenderer)),
		),
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) (dispatch.Mailer, error) {
	m, err := mailer.New(context.Background(), cfg.Mail, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("mailer configured", "driver", cfg.Mail.Driver, "from", cfg.Mail.From)
	return m, nil
}
