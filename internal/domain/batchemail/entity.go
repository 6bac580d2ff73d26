package batchemail

import (
	"time"

	"github.com/google/uuid"
)

type NewTaskParams struct {
	BatchID         uuid.UUID
	WorkItemID      uuid.UUID
	EmailType       string
	RecipientEmail  string
	RecipientName   string
	ScheduledSendAt time.Time
	Preconditions   Preconditions
}

// Task is one scheduled, individually cancellable outbound email.
type Task struct {
	queueID         uuid.UUID
	batchID         uuid.UUID
	workItemID      uuid.UUID
	emailType       EmailType
	recipient       Recipient
	scheduledSendAt time.Time
	status          Status
	preconditions   Preconditions
	cancelReason    *string
	lastError       *string
	createdAt       time.Time
}

func NewTask(p NewTaskParams, now time.Time) (*Task, error) {
	if p.BatchID == uuid.Nil {
		return nil, ErrMissingBatchID
	}
	if p.WorkItemID == uuid.Nil {
		return nil, ErrMissingWorkItemID
	}
	emailType, err := ParseEmailType(p.EmailType)
	if err != nil {
		return nil, err
	}
	recipient, err := NewRecipient(p.RecipientEmail, p.RecipientName)
	if err != nil {
		return nil, err
	}
	if p.ScheduledSendAt.IsZero() {
		return nil, ErrMissingSendTime
	}

	return &Task{
		queueID:         uuid.New(),
		batchID:         p.BatchID,
		workItemID:      p.WorkItemID,
		emailType:       emailType,
		recipient:       recipient,
		scheduledSendAt: p.ScheduledSendAt,
		status:          StatusQueued,
		preconditions:   p.Preconditions,
		createdAt:       now,
	}, nil
}

type TaskSnapshot struct {
	QueueID         uuid.UUID
	BatchID         uuid.UUID
	WorkItemID      uuid.UUID
	EmailType       EmailType
	RecipientEmail  string
	RecipientName   string
	ScheduledSendAt time.Time
	Status          Status
	Preconditions   Preconditions
	CancelReason    *string
	LastError       *string
	CreatedAt       time.Time
}

// ReconstructTask rebuilds a stored task without re-validating it.
func ReconstructTask(s TaskSnapshot) *Task {
	return &Task{
		queueID:         s.QueueID,
		batchID:         s.BatchID,
		workItemID:      s.WorkItemID,
		emailType:       s.EmailType,
		recipient:       Recipient{email: s.RecipientEmail, name: s.RecipientName},
		scheduledSendAt: s.ScheduledSendAt,
		status:          s.Status,
		preconditions:   s.Preconditions,
		cancelReason:    s.CancelReason,
		lastError:       s.LastError,
		createdAt:       s.CreatedAt,
	}
}

func (t *Task) QueueID() uuid.UUID           { return t.queueID }
func (t *Task) BatchID() uuid.UUID           { return t.batchID }
func (t *Task) WorkItemID() uuid.UUID        { return t.workItemID }
func (t *Task) EmailType() EmailType         { return t.emailType }
func (t *Task) Recipient() Recipient         { return t.recipient }
func (t *Task) ScheduledSendAt() time.Time   { return t.scheduledSendAt }
func (t *Task) Status() Status               { return t.status }
func (t *Task) Preconditions() Preconditions { return t.preconditions }
func (t *Task) CancelReason() *string        { return t.cancelReason }
func (t *Task) LastError() *string           { return t.lastError }
func (t *Task) CreatedAt() time.Time         { return t.createdAt }
func (t *Task) IsDue(now time.Time) bool     { return !t.scheduledSendAt.After(now) }
