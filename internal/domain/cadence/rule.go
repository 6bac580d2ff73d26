package cadence

import (
	"math"

	"order-followup/internal/pkg/errs"
)

// NeverFollowUp is the followUpDays sentinel carried by rules that freeze follow-up.
// PausesFollowUp is authoritative; the sentinel is informational.
const NeverFollowUp = -1

var (
	ErrPauseWithoutSentinel = errs.New("cadence rule pauses follow-up but has a follow-up interval")
	ErrSentinelWithoutPause = errs.New("cadence rule has the never-follow-up sentinel but does not pause")
	ErrNegativeFollowUpDays = errs.New("cadence rule follow-up days must be zero or positive")
	ErrInvertedWindow       = errs.New("cadence rule window minimum is greater than maximum")
)

// Rule is one row of the cadence rule table.
type Rule struct {
	CadenceKey        string
	WorkItemType      string
	Status            string
	DaysUntilEventMin *int
	DaysUntilEventMax *int
	FollowUpDays      int
	BusinessDaysOnly  bool
	Priority          int
	PausesFollowUp    bool
}

// Validate reports authoring defects in the rule row.
func (r Rule) Validate() error {
	if r.DaysUntilEventMin != nil && r.DaysUntilEventMax != nil && *r.DaysUntilEventMin > *r.DaysUntilEventMax {
		return ErrInvertedWindow
	}
	switch {
	case r.PausesFollowUp && r.FollowUpDays != NeverFollowUp:
		return ErrPauseWithoutSentinel
	case !r.PausesFollowUp && r.FollowUpDays == NeverFollowUp:
		return ErrSentinelWithoutPause
	case !r.PausesFollowUp && r.FollowUpDays < 0:
		return ErrNegativeFollowUpDays
	}
	return nil
}

func (r Rule) appliesTo(workItemType, status string) bool {
	return r.WorkItemType == workItemType && r.Status == status
}

// containsDay reports whether the window admits daysUntilEvent.
// A nil day only matches a fully unbounded window.
func (r Rule) containsDay(daysUntilEvent *int) bool {
	if daysUntilEvent == nil {
		return r.DaysUntilEventMin == nil && r.DaysUntilEventMax == nil
	}
	if r.DaysUntilEventMin != nil && *daysUntilEvent < *r.DaysUntilEventMin {
		return false
	}
	if r.DaysUntilEventMax != nil && *daysUntilEvent > *r.DaysUntilEventMax {
		return false
	}
	return true
}

func (r Rule) boundedSides() int {
	n := 0
	if r.DaysUntilEventMin != nil {
		n++
	}
	if r.DaysUntilEventMax != nil {
		n++
	}
	return n
}

// windowWidth is infinite unless both sides are bounded.
func (r Rule) windowWidth() int {
	if r.DaysUntilEventMin == nil || r.DaysUntilEventMax == nil {
		return math.MaxInt
	}
	return *r.DaysUntilEventMax - *r.DaysUntilEventMin
}
