package mailer

import (
	"context"
	"log/slog"

	"order-followup/internal/usecase/dispatch"
)

// LogMailer writes messages to the log instead of delivering them.
type LogMailer struct {
	from   string
	logger *slog.Logger
}

func NewLogMailer(from string, logger *slog.Logger) *LogMailer {
	return &LogMailer{from: from, logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg dispatch.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "email sent (log driver)",
		"queue_id", msg.QueueID.String(),
		"email_type", msg.EmailType.String(),
		"from", m.from,
		"to", formatAddress(msg.To, msg.ToName),
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML))
	return nil
}
