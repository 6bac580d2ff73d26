package mailer

import (
	"context"
	"log/slog"
	"net/mail"

	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/usecase/dispatch"
)

const (
	DriverLog = "log"
	DriverSES = "ses"
)

var ErrUnknownDriver = errs.New("unknown mail driver")

// New builds the transport selected by MAIL_DRIVER, wrapped in tracing.
func New(ctx context.Context, cfg config.MailConfig, logger *slog.Logger) (dispatch.Mailer, error) {
	var base dispatch.Mailer
	switch cfg.Driver {
	case DriverLog, "":
		base = NewLogMailer(cfg.From, logger)
	case DriverSES:
		ses, err := NewSESMailerFromConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		base = ses
	default:
		return nil, errs.Wrapf(ErrUnknownDriver, "driver %q", cfg.Driver)
	}
	return NewTracingMailer(base, cfg.Driver), nil
}

// formatAddress renders "Name <addr>" when a display name is known.
func formatAddress(addr, name string) string {
	if name == "" {
		return addr
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}
