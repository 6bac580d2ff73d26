package request

import (
	"time"

	"order-followup/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QueueBatchEmailRequest struct {
	BatchID             uuid.UUID `json:"batchId" binding:"required"`
	WorkItemID          uuid.UUID `json:"workItemId" binding:"required"`
	EmailType           string    `json:"emailType" binding:"required"`
	RecipientEmail      string    `json:"recipientEmail" binding:"required,email"`
	RecipientName       string    `json:"recipientName" binding:"max=200"`
	ScheduledSendAt     time.Time `json:"scheduledSendAt" binding:"required"`
	ExpectedBatchStatus *string   `json:"expectedBatchStatus"`
	ExpectedHasTracking *bool     `json:"expectedHasTracking"`
}

func (r *QueueBatchEmailRequest) ToInput() (commands.EnqueueInput, error) {
	var in commands.EnqueueInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.EnqueueInput{}, err
	}
	return in, nil
}

type CancelBatchEmailRequest struct {
	QueueID uuid.UUID `json:"queueId" binding:"required"`
	Reason  *string   `json:"reason" binding:"omitempty,max=500"`
}

func (r *CancelBatchEmailRequest) ToInput() (commands.CancelInput, error) {
	var in commands.CancelInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.CancelInput{}, err
	}
	return in, nil
}
