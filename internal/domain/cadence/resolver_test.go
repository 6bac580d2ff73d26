//go:build unit

package cadence_test

import (
	"testing"
	"time"

	"order-followup/internal/domain/cadence"
	"order-followup/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

// 2025-03-07 is a Friday.
var friday = time.Date(2025, 3, 7, 15, 0, 0, 0, time.UTC)

func TestAddBusinessDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		days  int
		want  time.Time
	}{
		{name: "friday plus five lands on next friday", start: friday, days: 5, want: friday.AddDate(0, 0, 7)},
		{name: "friday plus one skips the weekend", start: friday, days: 1, want: friday.AddDate(0, 0, 3)},
		{name: "monday plus four stays in the week", start: friday.AddDate(0, 0, 3), days: 4, want: friday.AddDate(0, 0, 7)},
		{name: "saturday plus zero rolls to monday", start: friday.AddDate(0, 0, 1), days: 0, want: friday.AddDate(0, 0, 3)},
		{name: "sunday plus one is monday", start: friday.AddDate(0, 0, 2), days: 1, want: friday.AddDate(0, 0, 3)},
		{name: "thursday plus two skips the weekend", start: friday.AddDate(0, 0, -1), days: 2, want: friday.AddDate(0, 0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cadence.AddBusinessDays(tt.start, tt.days)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
			assert.True(t, cadence.IsBusinessDay(got))
		})
	}
}

func TestDaysUntil(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	event := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	// 02:00 UTC on the 8th is still the 7th in New York.
	now := time.Date(2025, 3, 8, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, cadence.DaysUntil(event, now, time.UTC))
	assert.Equal(t, 3, cadence.DaysUntil(event, now, ny))
	assert.Equal(t, -1, cadence.DaysUntil(event, event.AddDate(0, 0, 1), time.UTC))
}

func baseRule() cadence.Rule {
	return cadence.Rule{
		CadenceKey:   "po_in_production",
		WorkItemType: "production_order",
		Status:       "in_production",
		FollowUpDays: 5,
		Priority:     10,
	}
}

func TestResolve(t *testing.T) {
	subject := cadence.Subject{
		WorkItemType:  "production_order",
		Status:        "in_production",
		LastContactAt: timePtr(friday),
	}

	t.Run("business days from last contact", func(t *testing.T) {
		r := baseRule()
		r.BusinessDaysOnly = true

		got, err := cadence.Resolve([]cadence.Rule{r}, subject, friday, time.UTC)

		require.NoError(t, err)
		want := cadence.Resolution{NextFollowUpAt: timePtr(friday.AddDate(0, 0, 7)), Matched: true, RuleKey: r.CadenceKey}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Resolution mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("calendar days anchor on now without a prior contact", func(t *testing.T) {
		s := subject
		s.LastContactAt = nil

		got, err := cadence.Resolve([]cadence.Rule{baseRule()}, s, friday, time.UTC)

		require.NoError(t, err)
		require.NotNil(t, got.NextFollowUpAt)
		assert.True(t, friday.AddDate(0, 0, 5).Equal(*got.NextFollowUpAt))
	})

	t.Run("no rule matched is not an error", func(t *testing.T) {
		r := baseRule()
		r.Status = "shipped"

		got, err := cadence.Resolve([]cadence.Rule{r}, subject, friday, time.UTC)

		require.NoError(t, err)
		assert.False(t, got.Matched)
		assert.Nil(t, got.NextFollowUpAt)
	})

	t.Run("pausing rule clears the date", func(t *testing.T) {
		r := baseRule()
		r.PausesFollowUp = true
		r.FollowUpDays = cadence.NeverFollowUp

		got, err := cadence.Resolve([]cadence.Rule{r}, subject, friday, time.UTC)

		require.NoError(t, err)
		assert.True(t, got.Paused)
		assert.Nil(t, got.NextFollowUpAt)
	})

	t.Run("sentinel without pause is inconsistent", func(t *testing.T) {
		r := baseRule()
		r.FollowUpDays = cadence.NeverFollowUp

		_, err := cadence.Resolve([]cadence.Rule{r}, subject, friday, time.UTC)

		assert.True(t, errs.Is(err, errs.ErrInconsistentRule))
	})

	t.Run("higher priority wins", func(t *testing.T) {
		low := baseRule()
		high := baseRule()
		high.CadenceKey = "po_urgent"
		high.Priority = 20
		high.FollowUpDays = 1

		got, err := cadence.Resolve([]cadence.Rule{low, high}, subject, friday, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, "po_urgent", got.RuleKey)
	})

	t.Run("narrower window wins a priority tie", func(t *testing.T) {
		s := subject
		s.EventDate = timePtr(friday.AddDate(0, 0, 10))

		wide := baseRule()
		wide.CadenceKey = "wide"
		wide.DaysUntilEventMin = intPtr(0)
		wide.DaysUntilEventMax = intPtr(30)
		narrow := baseRule()
		narrow.CadenceKey = "narrow"
		narrow.DaysUntilEventMin = intPtr(7)
		narrow.DaysUntilEventMax = intPtr(14)
		open := baseRule()
		open.CadenceKey = "open"
		open.DaysUntilEventMin = intPtr(0)

		got, err := cadence.Resolve([]cadence.Rule{open, wide, narrow}, s, friday, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, "narrow", got.RuleKey)
	})

	t.Run("window excludes out of range events", func(t *testing.T) {
		s := subject
		s.EventDate = timePtr(friday.AddDate(0, 0, 40))
		r := baseRule()
		r.DaysUntilEventMax = intPtr(30)

		got, err := cadence.Resolve([]cadence.Rule{r}, s, friday, time.UTC)

		require.NoError(t, err)
		assert.False(t, got.Matched)
	})

	t.Run("full tie with the same key is ambiguous", func(t *testing.T) {
		_, err := cadence.Resolve([]cadence.Rule{baseRule(), baseRule()}, subject, friday, time.UTC)

		assert.True(t, errs.Is(err, errs.ErrAmbiguousPriority))
	})

	t.Run("deterministic regardless of rule order", func(t *testing.T) {
		a := baseRule()
		a.CadenceKey = "a"
		b := baseRule()
		b.CadenceKey = "b"
		b.FollowUpDays = 2

		first, err := cadence.Resolve([]cadence.Rule{a, b}, subject, friday, time.UTC)
		require.NoError(t, err)
		second, err := cadence.Resolve([]cadence.Rule{b, a}, subject, friday, time.UTC)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("resolution depends on order (-first +second):\n%s", diff)
		}
		assert.Equal(t, "a", first.RuleKey)
	})
}

func TestRule_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *cadence.Rule)
		errIs  error
	}{
		{name: "valid", mutate: func(*cadence.Rule) {}},
		{name: "valid pause", mutate: func(r *cadence.Rule) { r.PausesFollowUp = true; r.FollowUpDays = cadence.NeverFollowUp }},
		{name: "pause with interval", mutate: func(r *cadence.Rule) { r.PausesFollowUp = true }, errIs: cadence.ErrPauseWithoutSentinel},
		{name: "sentinel without pause", mutate: func(r *cadence.Rule) { r.FollowUpDays = cadence.NeverFollowUp }, errIs: cadence.ErrSentinelWithoutPause},
		{name: "negative days", mutate: func(r *cadence.Rule) { r.FollowUpDays = -3 }, errIs: cadence.ErrNegativeFollowUpDays},
		{name: "inverted window", mutate: func(r *cadence.Rule) { r.DaysUntilEventMin = intPtr(5); r.DaysUntilEventMax = intPtr(1) }, errIs: cadence.ErrInvertedWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := baseRule()
			tt.mutate(&r)
			err := r.Validate()
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}
