package batchemail

import (
	"fmt"
	"net/mail"
	"strings"
)

const MaxRecipientNameLength = 200

type Recipient struct {
	email string
	name  string
}

func NewRecipient(email, name string) (Recipient, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Recipient{}, ErrInvalidRecipient
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Recipient{}, ErrInvalidRecipient
	}
	name = strings.TrimSpace(name)
	if len(name) > MaxRecipientNameLength {
		return Recipient{}, ErrRecipientNameLimit
	}
	return Recipient{email: email, name: name}, nil
}

func (r Recipient) Email() string { return r.email }
func (r Recipient) Name() string  { return r.name }

// FirstName is the merge field used by the templates.
func (r Recipient) FirstName() string {
	if r.name == "" {
		return ""
	}
	return strings.Fields(r.name)[0]
}

// OrderState is the batch/order state re-read right before sending.
type OrderState struct {
	BatchStatus    string
	HasTracking    bool
	TrackingNumber string
}

// Preconditions are the optimistic-concurrency snapshot taken at enqueue time.
// A nil field is not checked.
type Preconditions struct {
	ExpectedBatchStatus *string
	ExpectedHasTracking *bool
}

// Check compares the snapshot with the current state and explains any mismatch.
func (p Preconditions) Check(current OrderState) (bool, string) {
	if p.ExpectedBatchStatus != nil && *p.ExpectedBatchStatus != current.BatchStatus {
		return false, fmt.Sprintf("batch status is %q, expected %q", current.BatchStatus, *p.ExpectedBatchStatus)
	}
	if p.ExpectedHasTracking != nil && *p.ExpectedHasTracking != current.HasTracking {
		return false, fmt.Sprintf("has tracking is %t, expected %t", current.HasTracking, *p.ExpectedHasTracking)
	}
	return true, ""
}

func (p Preconditions) IsEmpty() bool {
	return p.ExpectedBatchStatus == nil && p.ExpectedHasTracking == nil
}
