//go:build unit

package channel_test

import (
	"testing"
	"time"

	"order-followup/internal/domain/channel"

	"github.com/stretchr/testify/assert"
)

func TestNeedsRenewal(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time { v := now.Add(d); return &v }

	tests := []struct {
		name string
		sub  *channel.Subscription
		want bool
	}{
		{name: "never subscribed", sub: nil, want: true},
		{name: "no expiry recorded", sub: &channel.Subscription{}, want: true},
		{name: "expired", sub: &channel.Subscription{ExpiresAt: at(-time.Hour)}, want: true},
		{name: "expires in 12h", sub: &channel.Subscription{ExpiresAt: at(12 * time.Hour)}, want: true},
		{name: "expires in 48h", sub: &channel.Subscription{ExpiresAt: at(48 * time.Hour)}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.NeedsRenewal(now, 24*time.Hour))
		})
	}
}

func TestBackfillFrom(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	window := 72 * time.Hour
	recent := now.Add(-6 * time.Hour)
	ancient := now.AddDate(0, 0, -30)

	var none *channel.Subscription
	assert.True(t, now.Add(-window).Equal(none.BackfillFrom(now, window)))
	assert.True(t, now.Add(-window).Equal((&channel.Subscription{LastBackfilledThrough: &ancient}).BackfillFrom(now, window)))
	assert.True(t, recent.Equal((&channel.Subscription{LastBackfilledThrough: &recent}).BackfillFrom(now, window)))
}
