package queries

import (
	"time"

	"github.com/google/uuid"
)

// BatchEmailView is one task as reported by the batch status endpoint.
type BatchEmailView struct {
	QueueID             uuid.UUID  `json:"queue_id"`
	BatchID             uuid.UUID  `json:"batch_id"`
	WorkItemID          uuid.UUID  `json:"work_item_id"`
	EmailType           string     `json:"email_type"`
	RecipientEmail      string     `json:"recipient_email"`
	RecipientName       string     `json:"recipient_name"`
	ScheduledSendAt     time.Time  `json:"scheduled_send_at"`
	Status              string     `json:"status"`
	ExpectedBatchStatus *string    `json:"expected_batch_status,omitempty"`
	ExpectedHasTracking *bool      `json:"expected_has_tracking,omitempty"`
	CancelReason        *string    `json:"cancel_reason,omitempty"`
	LastError           *string    `json:"last_error,omitempty"`
	ClaimedAt           *time.Time `json:"claimed_at,omitempty"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

type BatchStatusView struct {
	BatchID uuid.UUID         `json:"batch_id"`
	Emails  []*BatchEmailView `json:"emails"`
}

// DueWorkItemView is a work item whose follow-up date has passed.
type DueWorkItemView struct {
	ID             uuid.UUID  `json:"id"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	EventDate      *time.Time `json:"event_date,omitempty"`
	LastContactAt  *time.Time `json:"last_contact_at,omitempty"`
	NextFollowUpAt time.Time  `json:"next_follow_up_at"`
}

type PreviewView struct {
	EmailType string `json:"email_type"`
	Subject   string `json:"subject"`
	HTML      string `json:"html"`
}
