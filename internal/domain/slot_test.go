package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisrr11/turnos-service/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		open     types.TimeString
		close    types.TimeString
		duration int
		want     []string
	}{
		{
			name:     "60 minute slots over a working day",
			open:     "09:00",
			close:    "18:00",
			duration: 60,
			want:     []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
		},
		{
			name:     "last slot must fit entirely before close",
			open:     "09:00",
			close:    "10:30",
			duration: 60,
			want:     []string{"09:00"},
		},
		{
			name:     "30 minute slots",
			open:     "10:00",
			close:    "12:00",
			duration: 30,
			want:     []string{"10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "duration longer than the window yields no slots",
			open:     "09:00",
			close:    "10:00",
			duration: 90,
			want:     []string{},
		},
		{
			name:     "close before open yields no slots",
			open:     "18:00",
			close:    "09:00",
			duration: 60,
			want:     []string{},
		},
		{
			name:     "zero duration yields no slots",
			open:     "09:00",
			close:    "18:00",
			duration: 0,
			want:     []string{},
		},
		{
			name:     "non-dividing duration truncates the tail",
			open:     "09:00",
			close:    "11:00",
			duration: 45,
			want:     []string{"09:00", "09:45"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.open, tt.close, tt.duration)

			got := make([]string, 0, len(slots))
			for _, s := range slots {
				got = append(got, s.String())
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleConfig_HasSlot(t *testing.T) {
	cfg := &ScheduleConfig{
		OpenTime:            "09:00",
		CloseTime:           "12:00",
		SlotDurationMinutes: 60,
	}

	assert.True(t, cfg.HasSlot("10:00"))
	assert.False(t, cfg.HasSlot("10:30"), "time between slots is not a slot")
	assert.False(t, cfg.HasSlot("12:00"), "close time is not a slot")
	assert.False(t, cfg.HasSlot("08:00"))
}

func TestDefaultScheduleConfig(t *testing.T) {
	cfg := DefaultScheduleConfig(7)

	assert.Equal(t, int64(7), cfg.BusinessID)
	assert.Equal(t, DefaultOpenTime, cfg.OpenTime)
	assert.Equal(t, DefaultCloseTime, cfg.CloseTime)
	assert.Equal(t, DefaultSlotDurationMinutes, cfg.SlotDurationMinutes)

	// Monday through Friday enabled, weekend disabled
	assert.False(t, cfg.Weekdays[0])
	for d := 1; d <= 5; d++ {
		assert.True(t, cfg.Weekdays[d])
	}
	assert.False(t, cfg.Weekdays[6])
}
