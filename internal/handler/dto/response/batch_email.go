package response

import (
	"time"

	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/queries"
)

type QueueBatchEmailResponse struct {
	Success         bool      `json:"success"`
	QueueID         string    `json:"queueId"`
	Status          string    `json:"status"`
	ScheduledSendAt time.Time `json:"scheduledSendAt"`
	Duplicate       bool      `json:"duplicate"`
}

func FromEnqueueResult(r *commands.EnqueueResult) *QueueBatchEmailResponse {
	return &QueueBatchEmailResponse{
		Success:         true,
		QueueID:         r.QueueID.String(),
		Status:          r.Status,
		ScheduledSendAt: r.ScheduledSendAt,
		Duplicate:       r.Duplicate,
	}
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type BatchEmailResponse struct {
	QueueID             string     `json:"queueId"`
	WorkItemID          string     `json:"workItemId"`
	EmailType           string     `json:"emailType"`
	RecipientEmail      string     `json:"recipientEmail"`
	RecipientName       string     `json:"recipientName,omitempty"`
	ScheduledSendAt     time.Time  `json:"scheduledSendAt"`
	Status              string     `json:"status"`
	ExpectedBatchStatus *string    `json:"expectedBatchStatus,omitempty"`
	ExpectedHasTracking *bool      `json:"expectedHasTracking,omitempty"`
	CancelReason        *string    `json:"cancelReason,omitempty"`
	LastError           *string    `json:"lastError,omitempty"`
	ResolvedAt          *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type BatchStatusResponse struct {
	BatchID string                `json:"batchId"`
	Emails  []*BatchEmailResponse `json:"emails"`
}

func FromBatchStatusView(v *queries.BatchStatusView) *BatchStatusResponse {
	emails := make([]*BatchEmailResponse, len(v.Emails))
	for i, e := range v.Emails {
		emails[i] = &BatchEmailResponse{
			QueueID:             e.QueueID.String(),
			WorkItemID:          e.WorkItemID.String(),
			EmailType:           e.EmailType,
			RecipientEmail:      e.RecipientEmail,
			RecipientName:       e.RecipientName,
			ScheduledSendAt:     e.ScheduledSendAt,
			Status:              e.Status,
			ExpectedBatchStatus: e.ExpectedBatchStatus,
			ExpectedHasTracking: e.ExpectedHasTracking,
			CancelReason:        e.CancelReason,
			LastError:           e.LastError,
			ResolvedAt:          e.ResolvedAt,
			CreatedAt:           e.CreatedAt,
		}
	}
	return &BatchStatusResponse{BatchID: v.BatchID.String(), Emails: emails}
}
