package channel

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the stored state of the inbound notification channel watch.
type Subscription struct {
	ChannelID             string
	ResourceID            string
	ExpiresAt             *time.Time
	LastBackfilledThrough *time.Time
}

// NeedsRenewal is true when the watch is missing, expired, or expires within the window.
func (s *Subscription) NeedsRenewal(now time.Time, within time.Duration) bool {
	if s == nil || s.ExpiresAt == nil {
		return true
	}
	return !s.ExpiresAt.After(now.Add(within))
}

// BackfillFrom is where the next backfill starts: the last backfilled point,
// but never further back than now-maxLookback.
func (s *Subscription) BackfillFrom(now time.Time, maxLookback time.Duration) time.Time {
	floor := now.Add(-maxLookback)
	if s == nil || s.LastBackfilledThrough == nil {
		return floor
	}
	if s.LastBackfilledThrough.Before(floor) {
		return floor
	}
	return *s.LastBackfilledThrough
}

// Renewal is what the channel provider hands back after a (re)subscribe.
type Renewal struct {
	ResourceID string
	ExpiresAt  time.Time
}

// InboundEvent is a customer reply observed on the channel.
// WorkItemID is nil when the provider could not correlate the message to an order.
type InboundEvent struct {
	EventID    string
	WorkItemID *uuid.UUID
	From       string
	Subject    string
	ReceivedAt time.Time
}
