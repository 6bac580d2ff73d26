package mailer

import (
	"context"

	"order-followup/internal/usecase/dispatch"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingMailer opens a span around every send of the wrapped mailer.
type TracingMailer struct {
	next   dispatch.Mailer
	driver string
	tracer trace.Tracer
}

// NewTracingMailer records spans with the global provider installed at startup.
func NewTracingMailer(next dispatch.Mailer, driver string) *TracingMailer {
	return newTracingMailer(next, driver, otel.GetTracerProvider())
}

func newTracingMailer(next dispatch.Mailer, driver string, tp trace.TracerProvider) *TracingMailer {
	return &TracingMailer{
		next:   next,
		driver: driver,
		tracer: tp.Tracer("order-followup/mailer"),
	}
}

func (m *TracingMailer) Send(ctx context.Context, msg dispatch.Message) error {
	ctx, span := m.tracer.Start(ctx, "Mailer.Send",
		trace.WithAttributes(
			attribute.String("mail.driver", m.driver),
			attribute.String("batch_email.queue_id", msg.QueueID.String()),
			attribute.String("batch_email.type", msg.EmailType.String()),
		))
	defer span.End()

	err := m.next.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
