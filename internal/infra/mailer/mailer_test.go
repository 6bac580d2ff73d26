//go:build unit

package mailer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/usecase/dispatch"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

type MockSESAPI struct {
	mock.Mock
}

func (m *MockSESAPI) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*sesv2.SendEmailOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

type stubMailer struct {
	err  error
	sent []dispatch.Message
}

func (s *stubMailer) Send(_ context.Context, msg dispatch.Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func testMessage() dispatch.Message {
	return dispatch.Message{
		QueueID:   uuid.New(),
		EmailType: batchemail.EmailShipped,
		To:        "jane@example.com",
		ToName:    "Jane Doe",
		Subject:   "Your order has shipped",
		HTML:      "<p>Hi Jane</p>",
	}
}

func TestSESMailer_Send(t *testing.T) {
	t.Run("builds an html message", func(t *testing.T) {
		api := new(MockSESAPI)
		api.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
			return aws.ToString(in.FromEmailAddress) == "orders@example.com" &&
				len(in.Destination.ToAddresses) == 1 &&
				in.Destination.ToAddresses[0] == `"Jane Doe" <jane@example.com>` &&
				aws.ToString(in.Content.Simple.Subject.Data) == "Your order has shipped" &&
				aws.ToString(in.Content.Simple.Body.Html.Data) == "<p>Hi Jane</p>" &&
				in.Content.Simple.Body.Text == nil
		})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("m-1")}, nil)

		err := NewSESMailer(api, "orders@example.com").Send(context.Background(), testMessage())

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("wraps transport errors", func(t *testing.T) {
		api := new(MockSESAPI)
		api.On("SendEmail", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		err := NewSESMailer(api, "orders@example.com").Send(context.Background(), testMessage())

		require.Error(t, err)
		assert.True(t, errors.Is(err, assert.AnError))
		assert.Contains(t, err.Error(), "ses send email")
	})
}

func TestLogMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := NewLogMailer("orders@example.com", logger).Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "email sent (log driver)")
	assert.Contains(t, buf.String(), "email_type=shipped")
}

func TestLogMailer_SendCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewLogMailer("orders@example.com", slog.Default()).Send(ctx, testMessage())

	assert.ErrorIs(t, err, context.Canceled)
}

type spanCheckingMailer struct {
	recording bool
}

func (m *spanCheckingMailer) Send(ctx context.Context, _ dispatch.Message) error {
	m.recording = trace.SpanFromContext(ctx).IsRecording()
	return nil
}

func TestTracingMailer_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	t.Run("successful send", func(t *testing.T) {
		exporter.Reset()
		next := &spanCheckingMailer{}
		msg := testMessage()

		err := newTracingMailer(next, DriverSES, tp).Send(context.Background(), msg)

		require.NoError(t, err)
		assert.True(t, next.recording, "wrapped mailer should run inside a recording span")
		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "Mailer.Send", spans[0].Name)
		assert.Equal(t, codes.Unset, spans[0].Status.Code)
		assert.Contains(t, spans[0].Attributes, attribute.String("mail.driver", DriverSES))
		assert.Contains(t, spans[0].Attributes, attribute.String("batch_email.queue_id", msg.QueueID.String()))
		assert.Contains(t, spans[0].Attributes, attribute.String("batch_email.type", "shipped"))
	})

	t.Run("failed send marks the span", func(t *testing.T) {
		exporter.Reset()

		err := newTracingMailer(&stubMailer{err: assert.AnError}, DriverLog, tp).Send(context.Background(), testMessage())

		assert.ErrorIs(t, err, assert.AnError)
		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		require.Len(t, spans[0].Events, 1)
		assert.Equal(t, "exception", spans[0].Events[0].Name)
	})
}

func TestTracingMailer_PassesThrough(t *testing.T) {
	next := &stubMailer{err: assert.AnError}
	m := NewTracingMailer(next, DriverLog)

	err := m.Send(context.Background(), testMessage())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Len(t, next.sent, 1)
}

func TestNew(t *testing.T) {
	t.Run("log driver", func(t *testing.T) {
		m, err := New(context.Background(), config.MailConfig{Driver: DriverLog, From: "a@example.com"}, slog.Default())
		require.NoError(t, err)
		assert.IsType(t, &TracingMailer{}, m)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := New(context.Background(), config.MailConfig{Driver: "smtp"}, slog.Default())
		assert.True(t, errs.Is(err, ErrUnknownDriver))
	})

	t.Run("ses requires a sender", func(t *testing.T) {
		_, err := New(context.Background(), config.MailConfig{Driver: DriverSES}, slog.Default())
		assert.Error(t, err)
	})
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "jane@example.com", formatAddress("jane@example.com", ""))
	assert.Equal(t, `"Jane Doe" <jane@example.com>`, formatAddress("jane@example.com", "Jane Doe"))
}
