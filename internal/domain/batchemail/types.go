package batchemail

import "order-followup/internal/pkg/errs"

var (
	ErrInvalidEmailType   = errs.New("invalid email type")
	ErrInvalidStatus      = errs.New("invalid batch email status")
	ErrInvalidTransition  = errs.New("invalid batch email status transition")
	ErrMissingBatchID     = errs.New("batch id is required")
	ErrMissingWorkItemID  = errs.New("work item id is required")
	ErrMissingSendTime    = errs.New("scheduled send time is required")
	ErrInvalidRecipient   = errs.New("recipient email is invalid")
	ErrRecipientNameLimit = errs.New("recipient name exceeds maximum length")
)

// EmailType is the fixed set of lifecycle emails a batch can contain.
type EmailType string

const (
	EmailOrderReceived      EmailType = "order_received"
	EmailEnteringProduction EmailType = "entering_production"
	EmailProductionComplete EmailType = "production_complete"
	EmailShipped            EmailType = "shipped"
	EmailFollowUp           EmailType = "follow_up"
)

var emailTypes = []EmailType{
	EmailOrderReceived,
	EmailEnteringProduction,
	EmailProductionComplete,
	EmailShipped,
	EmailFollowUp,
}

func EmailTypes() []EmailType {
	out := make([]EmailType, len(emailTypes))
	copy(out, emailTypes)
	return out
}

func ParseEmailType(s string) (EmailType, error) {
	for _, t := range emailTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidEmailType
}

func (t EmailType) String() string { return string(t) }

// Status of a queue task. Sending is the claimed state between claim and outcome;
// every other non-queued status is terminal.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusSending   Status = "sending"
	StatusSent      Status = "sent"
	StatusCancelled Status = "cancelled"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusQueued, StatusSending, StatusSent, StatusCancelled, StatusSkipped, StatusFailed:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	switch s {
	case StatusSent, StatusCancelled, StatusSkipped, StatusFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the forward-only state machine.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusQueued:
		return next == StatusSending || next == StatusCancelled
	case StatusSending:
		return next == StatusSent || next == StatusSkipped || next == StatusFailed
	default:
		return false
	}
}
