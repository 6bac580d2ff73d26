package cadence

import "time"

func IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// AddCalendarDays keeps the wall-clock time of t in its own location.
func AddCalendarDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddBusinessDays steps forward one day at a time, counting only Monday-Friday.
// The result is always a business day, so days == 0 on a weekend rolls to Monday.
func AddBusinessDays(t time.Time, days int) time.Time {
	out := t
	for added := 0; added < days; {
		out = out.AddDate(0, 0, 1)
		if IsBusinessDay(out) {
			added++
		}
	}
	for !IsBusinessDay(out) {
		out = out.AddDate(0, 0, 1)
	}
	return out
}

// DaysUntil is the number of whole calendar days from today (in loc) to the event date.
// Negative when the event is in the past.
func DaysUntil(eventDate, now time.Time, loc *time.Location) int {
	today := civilDate(now.In(loc))
	event := civilDate(eventDate)
	return int(event.Sub(today).Hours() / 24)
}

// civilDate drops the clock and zone so day arithmetic is immune to DST shifts.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
