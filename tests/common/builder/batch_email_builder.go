//go:build unit || e2e

package builder

import (
	"time"

	"order-followup/internal/domain/batchemail"
	reqdto "order-followup/internal/handler/dto/request"
	"order-followup/internal/pkg/ptr"
	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/queries"

	"github.com/google/uuid"
)

type BatchEmailBuilder struct {
	QueueID             uuid.UUID
	BatchID             uuid.UUID
	WorkItemID          uuid.UUID
	EmailType           string
	RecipientEmail      string
	RecipientName       string
	ScheduledSendAt     time.Time
	ExpectedBatchStatus *string
	ExpectedHasTracking *bool
	Status              string
	CreatedAt           time.Time
}

func NewBatchEmailBuilder() *BatchEmailBuilder {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &BatchEmailBuilder{
		QueueID:             uuid.New(),
		BatchID:             uuid.New(),
		WorkItemID:          uuid.New(),
		EmailType:           batchemail.EmailShipped.String(),
		RecipientEmail:      "customer@example.com",
		RecipientName:       "Ada Lovelace",
		ScheduledSendAt:     now.Add(time.Hour),
		ExpectedBatchStatus: ptr.To("shipped"),
		Status:              batchemail.StatusQueued.String(),
		CreatedAt:           now,
	}
}

func (b *BatchEmailBuilder) With(mutate func(*BatchEmailBuilder)) *BatchEmailBuilder {
	mutate(b)
	return b
}

func (b *BatchEmailBuilder) BuildQueueRequestDTO() reqdto.QueueBatchEmailRequest {
	return reqdto.QueueBatchEmailRequest{
		BatchID:             b.BatchID,
		WorkItemID:          b.WorkItemID,
		EmailType:           b.EmailType,
		RecipientEmail:      b.RecipientEmail,
		RecipientName:       b.RecipientName,
		ScheduledSendAt:     b.ScheduledSendAt,
		ExpectedBatchStatus: b.ExpectedBatchStatus,
		ExpectedHasTracking: b.ExpectedHasTracking,
	}
}

func (b *BatchEmailBuilder) BuildEnqueueInput() commands.EnqueueInput {
	return commands.EnqueueInput{
		BatchID:             b.BatchID,
		WorkItemID:          b.WorkItemID,
		EmailType:           b.EmailType,
		RecipientEmail:      b.RecipientEmail,
		RecipientName:       b.RecipientName,
		ScheduledSendAt:     b.ScheduledSendAt,
		ExpectedBatchStatus: b.ExpectedBatchStatus,
		ExpectedHasTracking: b.ExpectedHasTracking,
	}
}

func (b *BatchEmailBuilder) BuildEnqueueResult(duplicate bool) *commands.EnqueueResult {
	return &commands.EnqueueResult{
		QueueID:         b.QueueID,
		Status:          b.Status,
		ScheduledSendAt: b.ScheduledSendAt,
		Duplicate:       duplicate,
	}
}

func (b *BatchEmailBuilder) BuildView() *queries.BatchEmailView {
	return &queries.BatchEmailView{
		QueueID:             b.QueueID,
		BatchID:             b.BatchID,
		WorkItemID:          b.WorkItemID,
		EmailType:           b.EmailType,
		RecipientEmail:      b.RecipientEmail,
		RecipientName:       b.RecipientName,
		ScheduledSendAt:     b.ScheduledSendAt,
		Status:              b.Status,
		ExpectedBatchStatus: b.ExpectedBatchStatus,
		ExpectedHasTracking: b.ExpectedHasTracking,
		CreatedAt:           b.CreatedAt,
	}
}
