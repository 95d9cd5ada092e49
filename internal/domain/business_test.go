package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusiness_InTrial(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, DefaultTrialDays)
	biz := &Business{TrialStartsAt: start, TrialEndsAt: end}

	assert.True(t, biz.InTrial(start))
	assert.True(t, biz.InTrial(start.AddDate(0, 0, 15)))
	assert.True(t, biz.InTrial(end))
	assert.False(t, biz.InTrial(start.Add(-time.Hour)))
	assert.False(t, biz.InTrial(end.Add(time.Hour)))
}

func TestBusiness_IsOperational(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		biz  Business
		want bool
	}{
		{
			"active inside trial",
			Business{Active: true, TrialStartsAt: now.AddDate(0, 0, -5), TrialEndsAt: now.AddDate(0, 0, 25)},
			true,
		},
		{
			"active with expired trial",
			Business{Active: true, TrialStartsAt: now.AddDate(0, -2, 0), TrialEndsAt: now.AddDate(0, -1, 0)},
			false,
		},
		{
			"deactivated inside trial",
			Business{Active: false, TrialStartsAt: now.AddDate(0, 0, -5), TrialEndsAt: now.AddDate(0, 0, 25)},
			false,
		},
		{
			"active without trial window",
			Business{Active: true},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.biz.IsOperational(now))
		})
	}
}
