package cadence

import (
	"sort"
	"time"

	"order-followup/internal/pkg/errs"
)

// Subject is the part of a work item the resolver looks at.
type Subject struct {
	WorkItemType  string
	Status        string
	EventDate     *time.Time
	LastContactAt *time.Time
}

// Resolution is the outcome of one resolver pass.
//
//   - Matched=false: no rule applies, no automatic follow-up.
//   - Paused=true: the selected rule freezes follow-up.
//   - otherwise NextFollowUpAt is set.
type Resolution struct {
	NextFollowUpAt *time.Time
	Paused         bool
	Matched        bool
	RuleKey        string
}

// Resolve selects the single best rule for the subject and computes the next contact time.
// It is pure: rules, subject and now fully determine the result.
func Resolve(rules []Rule, subject Subject, now time.Time, loc *time.Location) (Resolution, error) {
	if loc == nil {
		loc = time.UTC
	}

	var daysUntilEvent *int
	if subject.EventDate != nil {
		d := DaysUntil(*subject.EventDate, now, loc)
		daysUntilEvent = &d
	}

	candidates := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.appliesTo(subject.WorkItemType, subject.Status) && r.containsDay(daysUntilEvent) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return Resolution{}, nil
	}

	best, err := selectRule(candidates)
	if err != nil {
		return Resolution{}, err
	}

	if best.PausesFollowUp {
		return Resolution{Paused: true, Matched: true, RuleKey: best.CadenceKey}, nil
	}
	if best.FollowUpDays < 0 {
		return Resolution{}, errs.Mark(
			errs.Newf("rule %q has follow-up days %d without pausing", best.CadenceKey, best.FollowUpDays),
			errs.ErrInconsistentRule,
		)
	}

	anchor := now
	if subject.LastContactAt != nil {
		anchor = *subject.LastContactAt
	}
	anchor = anchor.In(loc)

	var next time.Time
	if best.BusinessDaysOnly {
		next = AddBusinessDays(anchor, best.FollowUpDays)
	} else {
		next = AddCalendarDays(anchor, best.FollowUpDays)
	}

	return Resolution{NextFollowUpAt: &next, Matched: true, RuleKey: best.CadenceKey}, nil
}

func selectRule(candidates []Rule) (Rule, error) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return compareRules(candidates[i], candidates[j]) < 0
	})
	if len(candidates) > 1 && compareRules(candidates[0], candidates[1]) == 0 {
		return Rule{}, errs.Mark(
			errs.Newf("rules tie on every key: %q", candidates[0].CadenceKey),
			errs.ErrAmbiguousPriority,
		)
	}
	return candidates[0], nil
}

// compareRules orders better rules first:
// priority desc, bounded sides desc, window width asc, cadence key asc.
func compareRules(a, b Rule) int {
	switch {
	case a.Priority != b.Priority:
		return b.Priority - a.Priority
	case a.boundedSides() != b.boundedSides():
		return b.boundedSides() - a.boundedSides()
	case a.windowWidth() != b.windowWidth():
		if a.windowWidth() < b.windowWidth() {
			return -1
		}
		return 1
	case a.CadenceKey < b.CadenceKey:
		return -1
	case a.CadenceKey > b.CadenceKey:
		return 1
	default:
		return 0
	}
}
