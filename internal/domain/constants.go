package domain

import "github.com/alexisrr11/turnos-service/pkg/types"

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	DefaultTrialDays           = 30
)

// Default opening hours
const (
	DefaultOpenTime  = types.TimeString("09:00")
	DefaultCloseTime = types.TimeString("18:00")
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MaxMotiveLength        = 500
	MaxServiceLength       = 200
)

// Booking rules
const (
	// MaxActiveAppointmentsPerWeek лимит активных записей пользователя
	// в рамках одной ISO недели (админов лимит не касается)
	MaxActiveAppointmentsPerWeek = 2

	// CancellationNoticeHours минимальное время до начала записи,
	// за которое пользователь может отменить её сам
	CancellationNoticeHours = 24
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
