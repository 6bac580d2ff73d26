package workitem

import (
	"time"

	"order-followup/internal/domain/cadence"
	"order-followup/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidType       = errs.New("invalid work item type")
	ErrInvalidSnoozeDays = errs.New("snooze days must be a positive integer")
)

type Type string

const (
	TypeProductionOrder Type = "production_order"
	TypeAssistedProject Type = "assisted_project"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeProductionOrder, TypeAssistedProject:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string { return string(t) }

// WorkItem is a unit of customer order work.
// Status and event date belong to the external workflow; the contact fields belong to this service.
type WorkItem struct {
	id             uuid.UUID
	itemType       Type
	status         string
	eventDate      *time.Time
	lastContactAt  *time.Time
	nextFollowUpAt *time.Time
}

func Reconstruct(id uuid.UUID, itemType Type, status string, eventDate, lastContactAt, nextFollowUpAt *time.Time) *WorkItem {
	return &WorkItem{
		id:             id,
		itemType:       itemType,
		status:         status,
		eventDate:      eventDate,
		lastContactAt:  lastContactAt,
		nextFollowUpAt: nextFollowUpAt,
	}
}

func (w *WorkItem) ID() uuid.UUID              { return w.id }
func (w *WorkItem) Type() Type                 { return w.itemType }
func (w *WorkItem) Status() string             { return w.status }
func (w *WorkItem) EventDate() *time.Time      { return w.eventDate }
func (w *WorkItem) LastContactAt() *time.Time  { return w.lastContactAt }
func (w *WorkItem) NextFollowUpAt() *time.Time { return w.nextFollowUpAt }

func (w *WorkItem) CadenceSubject() cadence.Subject {
	return cadence.Subject{
		WorkItemType:  w.itemType.String(),
		Status:        w.status,
		EventDate:     w.eventDate,
		LastContactAt: w.lastContactAt,
	}
}

// MarkFollowedUp records a contact at now; the caller resolves and applies the next date.
func (w *WorkItem) MarkFollowedUp(now time.Time) {
	t := now
	w.lastContactAt = &t
}

// ApplyResolution stores the resolver output; paused and unmatched both clear the date.
func (w *WorkItem) ApplyResolution(res cadence.Resolution) {
	w.nextFollowUpAt = res.NextFollowUpAt
}

// Snooze overrides the cadence with plain calendar days.
func (w *WorkItem) Snooze(now time.Time, days int) (time.Time, error) {
	if days <= 0 {
		return time.Time{}, ErrInvalidSnoozeDays
	}
	until := cadence.AddCalendarDays(now, days)
	w.nextFollowUpAt = &until
	return until, nil
}
