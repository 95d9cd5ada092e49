package domain

import (
	"time"

	"github.com/alexisrr11/turnos-service/pkg/types"
)

// ScheduleConfig represents the booking configuration of a business:
// opening hours, slot duration and the weekly enabled-days vector
type ScheduleConfig struct {
	ID                  int64
	BusinessID          int64
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int

	// Weekdays индексируется time.Weekday (Sunday=0 .. Saturday=6)
	Weekdays [7]bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWeekdayEnabled returns true if the weekly schedule enables the given day
func (c *ScheduleConfig) IsWeekdayEnabled(day time.Weekday) bool {
	return c.Weekdays[int(day)]
}

// Slots returns the ordered bookable slot set for the configuration
func (c *ScheduleConfig) Slots() []types.TimeString {
	return GenerateSlots(c.OpenTime, c.CloseTime, c.SlotDurationMinutes)
}

// HasSlot returns true if startTime is one of the configured slots
func (c *ScheduleConfig) HasSlot(startTime types.TimeString) bool {
	for _, slot := range c.Slots() {
		if slot == startTime {
			return true
		}
	}
	return false
}

// DefaultScheduleConfig returns the configuration a business starts with:
// открыто 09:00-18:00, слоты по 60 минут, понедельник-пятница
func DefaultScheduleConfig(businessID int64) *ScheduleConfig {
	return &ScheduleConfig{
		BusinessID:          businessID,
		OpenTime:            DefaultOpenTime,
		CloseTime:           DefaultCloseTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		Weekdays: [7]bool{
			time.Sunday:    false,
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  false,
		},
	}
}
